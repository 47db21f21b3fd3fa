package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/Myst4ke/cfra-project/types"
)

// Uniform implements independent uniform random colouring.
type Uniform struct {
	trials int
}

var _ types.ColouringSampler = (*Uniform)(nil)

// NewUniform creates a new uniform random sampler.
//
// Each leaf is drawn independently and uniformly from subset ∪ {void} on
// every trial, using the caller-supplied random source.
//
// Parameters:
//   - opts: Optional configuration (WithTrials)
//
// Returns:
//   - *Uniform: Initialized sampler
func NewUniform(opts ...Option) *Uniform {
	s := newSettings(opts)

	return &Uniform{trials: s.trials}
}

// Name returns "uniform".
func (u *Uniform) Name() string { return "uniform" }

// Colourings yields trials independent uniform colourings.
func (u *Uniform) Colourings(game *types.Game, subset []string, rng *rand.Rand) iter.Seq[types.Colouring] {
	colours := colourList(subset)
	leaves := game.LeafPlayers()

	return func(yield func(types.Colouring) bool) {
		for range u.trials {
			col := make(types.Colouring, len(leaves))
			for _, leaf := range leaves {
				col[leaf] = colours[rng.IntN(len(colours))]
			}
			if !yield(col) {
				return
			}
		}
	}
}
