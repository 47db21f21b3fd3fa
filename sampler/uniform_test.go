package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"

	cfratest "github.com/Myst4ke/cfra-project/testing"
	"github.com/Myst4ke/cfra-project/types"
)

func TestUniform_Colourings(t *testing.T) {
	game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"}, []string{"A", "B"}, nil)

	t.Run("yields the configured trial count", func(t *testing.T) {
		s := NewUniform(WithTrials(25))

		cols := collectWith(t, s, game, []string{"A"}, newRand(1))

		require.Len(t, cols, 25)
	})

	t.Run("colourings are complete and within subset plus void", func(t *testing.T) {
		s := NewUniform()
		allowed := map[string]bool{"A": true, types.VoidActivity: true}

		for _, col := range collectWith(t, s, game, []string{"A"}, newRand(2)) {
			require.Len(t, col, 2)
			require.True(t, allowed[col["L1"]])
			require.True(t, allowed[col["L2"]])
		}
	})

	t.Run("same seed reproduces the sequence", func(t *testing.T) {
		s := NewUniform(WithTrials(50))

		first := collectWith(t, s, game, []string{"A", "B"}, newRand(7))
		second := collectWith(t, s, game, []string{"A", "B"}, newRand(7))

		require.Equal(t, first, second)
	})

	t.Run("eventually covers every colour", func(t *testing.T) {
		s := NewUniform(WithTrials(200))

		seen := map[string]struct{}{}
		for _, col := range collectWith(t, s, game, []string{"A", "B"}, newRand(3)) {
			seen[col["L1"]] = struct{}{}
		}

		require.Len(t, seen, 3)
	})
}
