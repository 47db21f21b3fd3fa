package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/Myst4ke/cfra-project/types"
)

// Cyclic implements the deterministic round-robin baseline sampler.
type Cyclic struct {
	trials int
}

var _ types.ColouringSampler = (*Cyclic)(nil)

// NewCyclic creates a new round-robin sampler.
//
// Leaves are assigned colours round-robin over subset ∪ {void}, with the
// starting colour rotated once per trial. This produces at most
// len(subset)+1 distinct colourings regardless of the trial count and
// exists mainly as a cheap deterministic baseline.
//
// Parameters:
//   - opts: Optional configuration (WithTrials)
//
// Returns:
//   - *Cyclic: Initialized sampler
func NewCyclic(opts ...Option) *Cyclic {
	s := newSettings(opts)

	return &Cyclic{trials: s.trials}
}

// Name returns "cyclic".
func (c *Cyclic) Name() string { return "cyclic" }

// Colourings yields the round-robin colourings. The random source is unused.
func (c *Cyclic) Colourings(game *types.Game, subset []string, _ *rand.Rand) iter.Seq[types.Colouring] {
	colours := colourList(subset)
	leaves := game.LeafPlayers()

	return func(yield func(types.Colouring) bool) {
		for trial := range c.trials {
			col := make(types.Colouring, len(leaves))
			for i, leaf := range leaves {
				col[leaf] = colours[(i+trial)%len(colours)]
			}
			if !yield(col) {
				return
			}
		}
	}
}
