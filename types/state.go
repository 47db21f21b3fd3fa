package types

// State represents a phase of the guess-and-check search loop.
//
// A search progresses through:
//
//	StateSelectCenter → StateSelectSubset → StateSample → StateVerify → (StateFound | continue)
//
// StateFound is terminal only for find-one searches; find-all keeps cycling
// until every hypothesis is spent and the search ends in StateExhausted.
type State int

const (
	// StateIdle is the state of an engine that has not started searching.
	StateIdle State = iota

	// StateSelectCenter indicates a new center hypothesis is being picked.
	StateSelectCenter

	// StateSelectSubset indicates a new activity subset is being picked.
	StateSelectSubset

	// StateSample indicates candidate colourings are being drawn.
	StateSample

	// StateVerify indicates candidate colourings are being checked against
	// the stability predicate.
	StateVerify

	// StateFound indicates a stable assignment has been found.
	StateFound

	// StateExhausted indicates the whole hypothesis space was explored
	// without finding a stable assignment (find-one), or enumeration
	// completed (find-all).
	StateExhausted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelectCenter:
		return "SelectCenter"
	case StateSelectSubset:
		return "SelectSubset"
	case StateSample:
		return "Sample"
	case StateVerify:
		return "Verify"
	case StateFound:
		return "Found"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}
