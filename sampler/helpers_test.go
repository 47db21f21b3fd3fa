package sampler

import (
	"math/rand/v2"
	"testing"

	"github.com/Myst4ke/cfra-project/types"
)

// newRand returns a deterministic random source for a test.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func collectWith(t *testing.T, s types.ColouringSampler, game *types.Game, subset []string, rng *rand.Rand) []types.Colouring {
	t.Helper()

	var out []types.Colouring
	for col := range s.Colourings(game, subset, rng) {
		out = append(out, col)
	}

	return out
}
