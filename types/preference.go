package types

import (
	"fmt"
	"strings"
)

// PreferenceEntry is one acceptable (activity, group size) pair in a
// player's preference list.
type PreferenceEntry struct {
	// Activity is the declared activity identifier (or VoidActivity).
	Activity string `json:"activity" yaml:"activity"`

	// GroupSize is the exact total group size the player accepts for the
	// activity, including every participant sharing it.
	GroupSize int `json:"groupSize" yaml:"groupSize"`
}

// String returns the scenario-file rendering, e.g. "(hiking, 2)".
func (e PreferenceEntry) String() string {
	return fmt.Sprintf("(%s, %d)", e.Activity, e.GroupSize)
}

// PreferenceList is a player's ordered sequence of acceptable
// (activity, group size) pairs. Earlier entries are preferred; stability
// only requires membership, but the rank-weighted sampler uses position as
// a sampling weight.
type PreferenceList []PreferenceEntry

// Accepts reports whether the pair (activity, size) appears in the list.
func (l PreferenceList) Accepts(activity string, size int) bool {
	for _, e := range l {
		if e.Activity == activity && e.GroupSize == size {
			return true
		}
	}

	return false
}

// AcceptsActivity reports whether the activity appears in the list with any
// group size.
func (l PreferenceList) AcceptsActivity(activity string) bool {
	return l.Rank(activity) >= 0
}

// Rank returns the position of the first entry mentioning the activity, or
// -1 when the activity does not appear. Lower ranks are preferred.
func (l PreferenceList) Rank(activity string) int {
	for i, e := range l {
		if e.Activity == activity {
			return i
		}
	}

	return -1
}

// Activities returns the distinct activities mentioned by the list, in
// first-appearance order. VoidActivity entries are skipped since the void
// activity is implicitly available to everyone.
func (l PreferenceList) Activities() []string {
	seen := make(map[string]struct{}, len(l))
	out := make([]string, 0, len(l))
	for _, e := range l {
		if e.Activity == VoidActivity {
			continue
		}
		if _, dup := seen[e.Activity]; dup {
			continue
		}
		seen[e.Activity] = struct{}{}
		out = append(out, e.Activity)
	}

	return out
}

// String renders the list in scenario-file order, e.g.
// "(hiking, 2) > (bus_trip, 1)".
func (l PreferenceList) String() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.String()
	}

	return strings.Join(parts, " > ")
}
