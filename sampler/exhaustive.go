package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/Myst4ke/cfra-project/types"
)

// Exhaustive enumerates the complete Cartesian product of per-leaf colour
// domains.
type Exhaustive struct{}

var _ types.ColouringSampler = (*Exhaustive)(nil)

// NewExhaustive creates a new exhaustive sampler.
//
// For a capacity-style game every leaf ranges over subset ∪ {void}; for a
// preference-style game every leaf ranges over its preference-filtered
// colours plus void. The sampler streams the full Cartesian product, so it
// is the only strategy guaranteeing completeness for a fixed
// (hypothesis, subset) pair — at a cost exponential in the leaf count.
//
// Returns:
//   - *Exhaustive: Initialized sampler
func NewExhaustive() *Exhaustive {
	return &Exhaustive{}
}

// Name returns "exhaustive".
func (e *Exhaustive) Name() string { return "exhaustive" }

// Colourings streams the Cartesian product in odometer order: the last leaf
// varies fastest. The random source is unused.
func (e *Exhaustive) Colourings(game *types.Game, subset []string, _ *rand.Rand) iter.Seq[types.Colouring] {
	leaves := game.LeafPlayers()
	domains := make([][]string, len(leaves))
	for i, leaf := range leaves {
		if game.Style() == types.StylePreference {
			domains[i] = filteredColours(game, leaf, subset)
		} else {
			domains[i] = colourList(subset)
		}
	}

	return func(yield func(types.Colouring) bool) {
		if len(leaves) == 0 {
			yield(types.Colouring{})
			return
		}

		idx := make([]int, len(leaves))
		for {
			col := make(types.Colouring, len(leaves))
			for i, leaf := range leaves {
				col[leaf] = domains[i][idx[i]]
			}
			if !yield(col) {
				return
			}

			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(domains[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
