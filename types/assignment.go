package types

import (
	"fmt"
	"slices"
	"strings"
)

// Colouring maps every leaf player to the activity it is assigned to, which
// is either a member of the activity subset under test or VoidActivity.
// Samplers always produce complete colourings: no leaf is ever omitted.
type Colouring map[string]string

// Clone returns an independent copy of the colouring.
func (c Colouring) Clone() Colouring {
	out := make(Colouring, len(c))
	for leaf, activity := range c {
		out[leaf] = activity
	}

	return out
}

// Assignment is a completed, verified result: the central player's fixed
// choice combined with a stable leaf colouring.
type Assignment struct {
	// Center is the central player identifier.
	Center string `json:"center" yaml:"center"`

	// CenterActivity is the activity the central player joins.
	CenterActivity string `json:"centerActivity" yaml:"centerActivity"`

	// GroupSize is the group size of the center hypothesis that produced
	// this assignment.
	GroupSize int `json:"groupSize" yaml:"groupSize"`

	// Leaves maps every leaf player to its activity.
	Leaves Colouring `json:"leaves" yaml:"leaves"`
}

// Activity returns the activity of any player in the assignment, central or
// leaf. The second return value is false for unknown players.
func (a Assignment) Activity(player string) (string, bool) {
	if player == a.Center {
		return a.CenterActivity, true
	}
	activity, ok := a.Leaves[player]

	return activity, ok
}

// Occupancy counts the players per occupied activity, the central player
// included. This is the presentation view of occupancy; the stability
// predicate works on leaf-only counters (see the verifier).
func (a Assignment) Occupancy() map[string]int {
	occ := make(map[string]int, len(a.Leaves)+1)
	occ[a.CenterActivity]++
	for _, activity := range a.Leaves {
		occ[activity]++
	}

	return occ
}

// String renders the assignment with players in sorted order, e.g.
// "C→hiking(2) L1→hiking L2→void".
func (a Assignment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s→%s(%d)", a.Center, a.CenterActivity, a.GroupSize)

	leaves := make([]string, 0, len(a.Leaves))
	for leaf := range a.Leaves {
		leaves = append(leaves, leaf)
	}
	slices.Sort(leaves)
	for _, leaf := range leaves {
		fmt.Fprintf(&b, " %s→%s", leaf, a.Leaves[leaf])
	}

	return b.String()
}
