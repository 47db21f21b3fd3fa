package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/Myst4ke/cfra-project/types"
)

// Filtered implements preference-filtered uniform random colouring.
type Filtered struct {
	trials int
}

var _ types.ColouringSampler = (*Filtered)(nil)

// NewFiltered creates a new preference-filtered random sampler.
//
// Each leaf draws uniformly only from colours that are both in the active
// subset and in the leaf's own preference list, plus void. This avoids
// wasting trials on colourings no leaf could ever accept. A leaf with no
// acceptable activity in the subset is always assigned void.
//
// Parameters:
//   - opts: Optional configuration (WithTrials)
//
// Returns:
//   - *Filtered: Initialized sampler
func NewFiltered(opts ...Option) *Filtered {
	s := newSettings(opts)

	return &Filtered{trials: s.trials}
}

// Name returns "filtered".
func (f *Filtered) Name() string { return "filtered" }

// Colourings yields trials preference-filtered colourings.
func (f *Filtered) Colourings(game *types.Game, subset []string, rng *rand.Rand) iter.Seq[types.Colouring] {
	leaves := game.LeafPlayers()
	domains := make([][]string, len(leaves))
	for i, leaf := range leaves {
		domains[i] = filteredColours(game, leaf, subset)
	}

	return func(yield func(types.Colouring) bool) {
		for range f.trials {
			col := make(types.Colouring, len(leaves))
			for i, leaf := range leaves {
				col[leaf] = domains[i][rng.IntN(len(domains[i]))]
			}
			if !yield(col) {
				return
			}
		}
	}
}
