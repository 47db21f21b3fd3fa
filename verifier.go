package cfra

import (
	"github.com/Myst4ke/cfra-project/internal/metrics"
	"github.com/Myst4ke/cfra-project/types"
)

// Verifier evaluates the Nash stability predicate for candidate colourings.
//
// The predicate is pure: it never mutates the game, never fails, and always
// yields the same boolean for the same (hypothesis, subset, colouring)
// triple. The two constraint styles share one verification structure and
// differ only in the constraintRule the style selects:
//   - Capacity: occupancy bounds and spare-capacity deviations
//   - Preference: (activity, group size) membership and accepted deviations
//
// Occupancy counters cover the leaf players only, and the hypothesis group
// size is compared against those leaf counters directly. A Verifier is
// stateless apart from its metrics sink and safe for concurrent use.
type Verifier struct {
	game    *Game
	rule    constraintRule
	metrics types.VerifierMetrics
}

// NewVerifier creates a verifier for the given game, selecting the
// constraint rule matching the game's style.
//
// Parameters:
//   - game: Validated game model
//   - collector: Metrics sink for predicate evaluations (nil for none)
//
// Returns:
//   - *Verifier: Verifier bound to the game
func NewVerifier(game *Game, collector types.VerifierMetrics) *Verifier {
	if collector == nil {
		collector = metrics.NewNop()
	}

	var rule constraintRule
	switch game.Style() {
	case StylePreference:
		rule = newPreferenceRule(game)
	default:
		rule = capacityRule{game: game}
	}

	return &Verifier{game: game, rule: rule, metrics: collector}
}

// Stable reports whether the candidate colouring, combined with the center
// hypothesis, is Nash stable over the given activity subset.
//
// Parameters:
//   - hyp: Center hypothesis (activity, group size) under test
//   - subset: Activity subset "in use" for this iteration
//   - colouring: Complete leaf→activity candidate mapping
//
// Returns:
//   - bool: true when no rejection rule fires
func (v *Verifier) Stable(hyp CenterHypothesis, subset []string, colouring Colouring) bool {
	stable := v.stable(hyp, subset, colouring)
	v.metrics.RecordVerification(stable)

	return stable
}

func (v *Verifier) stable(hyp CenterHypothesis, subset []string, colouring Colouring) bool {
	occ := make(map[string]int, len(subset)+2)
	for _, activity := range subset {
		occ[activity] = 0
	}
	occ[VoidActivity] = 0
	if _, ok := occ[hyp.Activity]; !ok {
		occ[hyp.Activity] = 0
	}
	for _, activity := range colouring {
		occ[activity]++
	}

	if !v.rule.centerAccepts(hyp) {
		return false
	}
	if !v.rule.occupancyAllowed(occ) {
		return false
	}
	if occ[hyp.Activity] != hyp.GroupSize {
		return false
	}

	for leaf, activity := range colouring {
		if activity == VoidActivity {
			// A void leaf must have no available deviation into the subset.
			for _, alt := range subset {
				if v.rule.deviates(leaf, alt, occ[alt]) {
					return false
				}
			}

			continue
		}
		if !v.rule.leafAccepts(leaf, activity, occ[activity]) {
			return false
		}
	}

	return true
}

// constraintRule is the style-specific half of the stability predicate.
type constraintRule interface {
	// centerAccepts reports whether the hypothesis itself is admissible for
	// the central player.
	centerAccepts(hyp CenterHypothesis) bool

	// occupancyAllowed reports whether the leaf occupancy counters respect
	// the global constraints of the style.
	occupancyAllowed(occ map[string]int) bool

	// leafAccepts reports whether a leaf accepts its non-void activity at
	// the given occupancy.
	leafAccepts(leaf, activity string, occupancy int) bool

	// deviates reports whether a void-assigned leaf has an available move
	// into activity at the given occupancy.
	deviates(leaf, activity string, occupancy int) bool
}

// capacityRule rejects on exceeded capacities and on void leaves facing an
// activity with spare capacity.
type capacityRule struct {
	game *Game
}

func (r capacityRule) centerAccepts(_ CenterHypothesis) bool { return true }

func (r capacityRule) occupancyAllowed(occ map[string]int) bool {
	for activity, count := range occ {
		if activity == VoidActivity {
			continue
		}
		if !r.game.Capacity(activity).Allows(count) {
			return false
		}
	}

	return true
}

func (r capacityRule) leafAccepts(_, _ string, _ int) bool { return true }

func (r capacityRule) deviates(_, activity string, occupancy int) bool {
	c := r.game.Capacity(activity)

	return !c.IsBounded() || occupancy < c.Max()
}

// preferenceRule rejects on (activity, group size) pairs outside a player's
// preference list and on void leaves with an accepted join available.
type preferenceRule struct {
	central string
	prefs   map[string]PreferenceList
}

func newPreferenceRule(game *Game) preferenceRule {
	players := append(game.LeafPlayers(), game.CentralPlayer())
	prefs := make(map[string]PreferenceList, len(players))
	for _, player := range players {
		list, _ := game.Preferences(player)
		prefs[player] = list
	}

	return preferenceRule{central: game.CentralPlayer(), prefs: prefs}
}

func (r preferenceRule) centerAccepts(hyp CenterHypothesis) bool {
	return r.prefs[r.central].Accepts(hyp.Activity, hyp.GroupSize)
}

func (r preferenceRule) occupancyAllowed(_ map[string]int) bool { return true }

func (r preferenceRule) leafAccepts(leaf, activity string, occupancy int) bool {
	return r.prefs[leaf].Accepts(activity, occupancy)
}

func (r preferenceRule) deviates(leaf, activity string, occupancy int) bool {
	return r.prefs[leaf].Accepts(activity, occupancy+1)
}
