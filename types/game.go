package types

import (
	"fmt"
	"strconv"
)

// VoidActivity is the reserved "opt out" activity.
//
// It is always available to every leaf player, carries no occupancy
// constraint, and must not be declared as a regular activity. Players may
// list it in a preference list, but never need to.
const VoidActivity = "void"

// GameStyle selects the constraint model of a game.
type GameStyle int8

const (
	// StyleCapacity constrains activities by a maximum occupancy.
	StyleCapacity GameStyle = iota

	// StylePreference constrains players by ranked (activity, group size)
	// preference lists instead of global capacities.
	StylePreference
)

// String returns a human-readable style name.
func (s GameStyle) String() string {
	switch s {
	case StyleCapacity:
		return "capacity"
	case StylePreference:
		return "preference"
	default:
		return "unknown"
	}
}

// Capacity is the maximum occupancy of an activity: either a positive bound
// or unbounded. The unbounded case is an explicit flag, never a numeric
// sentinel such as floating-point infinity.
type Capacity struct {
	limit   int
	bounded bool
}

// Limit returns a bounded capacity with the given maximum occupancy.
func Limit(n int) Capacity {
	return Capacity{limit: n, bounded: true}
}

// Unbounded returns a capacity with no occupancy bound.
func Unbounded() Capacity {
	return Capacity{}
}

// IsBounded reports whether the capacity carries a finite bound.
func (c Capacity) IsBounded() bool { return c.bounded }

// Max returns the finite bound. Only meaningful when IsBounded is true.
func (c Capacity) Max() int { return c.limit }

// Allows reports whether an occupancy of count players fits this capacity.
func (c Capacity) Allows(count int) bool {
	return !c.bounded || count <= c.limit
}

// String returns the scenario-file rendering: the bound, or "inf".
func (c Capacity) String() string {
	if !c.bounded {
		return "inf"
	}

	return strconv.Itoa(c.limit)
}

// Game is the validated, immutable configuration of one star-shaped hedonic
// coalition game: a unique central player, a set of leaf players, a list of
// activities, and either a capacity lookup or per-player preference lists.
//
// A Game is built once via NewCapacityGame or NewPreferenceGame and is
// read-only afterwards. All accessors return copies, so a Game is safe to
// share across concurrent search workers.
type Game struct {
	central     string
	leaves      []string
	activities  []string
	style       GameStyle
	capacities  map[string]Capacity
	preferences map[string]PreferenceList
}

// NewCapacityGame builds a capacity-style game.
//
// Activities without an entry in capacities are treated as unbounded.
//
// Parameters:
//   - central: Identifier of the unique central player
//   - leaves: Identifiers of the leaf players (order is preserved but has no meaning)
//   - activities: Declared activity identifiers, in declared order
//   - capacities: Maximum occupancy per activity (may omit unbounded activities)
//
// Returns:
//   - *Game: Validated immutable game
//   - error: Wrapped ErrInvalidGame describing the first violation found
func NewCapacityGame(central string, leaves, activities []string, capacities map[string]Capacity) (*Game, error) {
	g := &Game{
		central:    central,
		leaves:     cloneStrings(leaves),
		activities: cloneStrings(activities),
		style:      StyleCapacity,
		capacities: make(map[string]Capacity, len(capacities)),
	}
	for a, c := range capacities {
		g.capacities[a] = c
	}

	if err := g.validateCommon(); err != nil {
		return nil, err
	}
	if err := g.validateCapacities(); err != nil {
		return nil, err
	}

	return g, nil
}

// NewPreferenceGame builds a preference-style game.
//
// Every player, the central one included, must appear in preferences; a
// player with no entry at all is a configuration error, while an empty list
// is legal and simply means the player only ever accepts the void activity.
//
// Parameters:
//   - central: Identifier of the unique central player
//   - leaves: Identifiers of the leaf players
//   - activities: Declared activity identifiers, in declared order
//   - preferences: Ordered acceptable (activity, group size) pairs per player
//
// Returns:
//   - *Game: Validated immutable game
//   - error: Wrapped ErrInvalidGame describing the first violation found
func NewPreferenceGame(central string, leaves, activities []string, preferences map[string]PreferenceList) (*Game, error) {
	g := &Game{
		central:     central,
		leaves:      cloneStrings(leaves),
		activities:  cloneStrings(activities),
		style:       StylePreference,
		preferences: make(map[string]PreferenceList, len(preferences)),
	}
	for p, list := range preferences {
		g.preferences[p] = append(PreferenceList(nil), list...)
	}

	if err := g.validateCommon(); err != nil {
		return nil, err
	}
	if err := g.validatePreferences(); err != nil {
		return nil, err
	}

	return g, nil
}

// CentralPlayer returns the central player identifier.
func (g *Game) CentralPlayer() string { return g.central }

// LeafPlayers returns a copy of the leaf player identifiers.
func (g *Game) LeafPlayers() []string { return cloneStrings(g.leaves) }

// LeafCount returns the number of leaf players.
func (g *Game) LeafCount() int { return len(g.leaves) }

// Activities returns a copy of the declared activities, in declared order.
func (g *Game) Activities() []string { return cloneStrings(g.activities) }

// Style returns the constraint style of the game.
func (g *Game) Style() GameStyle { return g.style }

// Capacity returns the declared capacity of an activity. Activities without
// a declared bound (including every activity of a preference-style game)
// report as unbounded.
func (g *Game) Capacity(activity string) Capacity {
	if c, ok := g.capacities[activity]; ok {
		return c
	}

	return Unbounded()
}

// Preferences returns the preference list of a player. The second return
// value is false when the player has no entry, which can only happen for
// capacity-style games.
func (g *Game) Preferences(player string) (PreferenceList, bool) {
	list, ok := g.preferences[player]
	if !ok {
		return nil, false
	}

	return append(PreferenceList(nil), list...), true
}

func (g *Game) validateCommon() error {
	if g.central == "" {
		return fmt.Errorf("%w: central player identifier is empty", ErrInvalidGame)
	}

	seen := make(map[string]struct{}, len(g.leaves)+1)
	seen[g.central] = struct{}{}
	for _, leaf := range g.leaves {
		if leaf == "" {
			return fmt.Errorf("%w: leaf player identifier is empty", ErrInvalidGame)
		}
		if leaf == g.central {
			return fmt.Errorf("%w: central player %q duplicated among leaves", ErrInvalidGame, leaf)
		}
		if _, dup := seen[leaf]; dup {
			return fmt.Errorf("%w: duplicate leaf player %q", ErrInvalidGame, leaf)
		}
		seen[leaf] = struct{}{}
	}

	declared := make(map[string]struct{}, len(g.activities))
	for _, a := range g.activities {
		if a == "" {
			return fmt.Errorf("%w: activity identifier is empty", ErrInvalidGame)
		}
		if a == VoidActivity {
			return fmt.Errorf("%w: %q is reserved and cannot be declared as an activity", ErrInvalidGame, VoidActivity)
		}
		if _, dup := declared[a]; dup {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidGame, a)
		}
		declared[a] = struct{}{}
	}

	return nil
}

func (g *Game) validateCapacities() error {
	declared := g.declaredSet()
	for activity, cap := range g.capacities {
		if activity == VoidActivity {
			return fmt.Errorf("%w: the void activity cannot carry a capacity", ErrInvalidGame)
		}
		if _, ok := declared[activity]; !ok {
			return fmt.Errorf("%w: capacity declared for unknown activity %q", ErrInvalidGame, activity)
		}
		if cap.IsBounded() && cap.Max() <= 0 {
			return fmt.Errorf("%w: activity %q has non-positive capacity %d", ErrInvalidGame, activity, cap.Max())
		}
	}

	return nil
}

func (g *Game) validatePreferences() error {
	declared := g.declaredSet()
	players := make(map[string]struct{}, len(g.leaves)+1)
	players[g.central] = struct{}{}
	for _, leaf := range g.leaves {
		players[leaf] = struct{}{}
	}

	for player, list := range g.preferences {
		if _, ok := players[player]; !ok {
			return fmt.Errorf("%w: preferences declared for unknown player %q", ErrInvalidGame, player)
		}
		for _, entry := range list {
			if entry.GroupSize < 1 {
				return fmt.Errorf("%w: player %q lists non-positive group size %d for activity %q",
					ErrInvalidGame, player, entry.GroupSize, entry.Activity)
			}
			if entry.Activity == VoidActivity {
				// The void activity is implicitly acceptable; listing it is allowed.
				continue
			}
			if _, ok := declared[entry.Activity]; !ok {
				return fmt.Errorf("%w: player %q references undeclared activity %q",
					ErrInvalidGame, player, entry.Activity)
			}
		}
	}

	for player := range players {
		if _, ok := g.preferences[player]; !ok {
			return fmt.Errorf("%w: player %q has no preference entry", ErrInvalidGame, player)
		}
	}

	return nil
}

func (g *Game) declaredSet() map[string]struct{} {
	declared := make(map[string]struct{}, len(g.activities))
	for _, a := range g.activities {
		declared[a] = struct{}{}
	}

	return declared
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}
