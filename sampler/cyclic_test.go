package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"

	cfratest "github.com/Myst4ke/cfra-project/testing"
	"github.com/Myst4ke/cfra-project/types"
)

func TestCyclic_Colourings(t *testing.T) {
	game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2", "L3"}, []string{"A", "B"}, nil)

	t.Run("yields the configured trial count", func(t *testing.T) {
		s := NewCyclic(WithTrials(7))

		cols := collectWith(t, s, game, []string{"A", "B"}, newRand(1))

		require.Len(t, cols, 7)
	})

	t.Run("colourings are complete and within subset plus void", func(t *testing.T) {
		s := NewCyclic(WithTrials(10))
		allowed := map[string]bool{"A": true, "B": true, types.VoidActivity: true}

		for _, col := range collectWith(t, s, game, []string{"A", "B"}, newRand(1)) {
			require.Len(t, col, 3)
			for _, leaf := range []string{"L1", "L2", "L3"} {
				require.True(t, allowed[col[leaf]], "leaf %s got %q", leaf, col[leaf])
			}
		}
	})

	t.Run("rotation yields one colouring per colour", func(t *testing.T) {
		s := NewCyclic(WithTrials(100))

		distinct := map[string]struct{}{}
		for _, col := range collectWith(t, s, game, []string{"A", "B"}, newRand(1)) {
			distinct[col["L1"]+"|"+col["L2"]+"|"+col["L3"]] = struct{}{}
		}

		// Subset {A,B} plus void gives exactly three rotations.
		require.Len(t, distinct, 3)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		s := NewCyclic(WithTrials(5))

		first := collectWith(t, s, game, []string{"A"}, newRand(1))
		second := collectWith(t, s, game, []string{"A"}, newRand(99))

		require.Equal(t, first, second)
	})
}
