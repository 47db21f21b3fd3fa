package types

import "fmt"

// CenterHypothesis is one guess at the central player's outcome: the
// activity it joins and the exact group size of that activity.
type CenterHypothesis struct {
	// Activity is the guessed activity for the central player.
	Activity string `json:"activity" yaml:"activity"`

	// GroupSize is the guessed group size, at least 1.
	GroupSize int `json:"groupSize" yaml:"groupSize"`
}

// String returns the pair rendering, e.g. "(hiking, 2)".
func (h CenterHypothesis) String() string {
	return fmt.Sprintf("(%s, %d)", h.Activity, h.GroupSize)
}
