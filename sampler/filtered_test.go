package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"

	cfratest "github.com/Myst4ke/cfra-project/testing"
	"github.com/Myst4ke/cfra-project/types"
)

func prefGame(t *testing.T) *types.Game {
	t.Helper()

	return cfratest.MustPreferenceGame(t, "C", []string{"L1", "L2"}, []string{"A", "B"},
		map[string]types.PreferenceList{
			"C":  {{Activity: "A", GroupSize: 2}},
			"L1": {{Activity: "A", GroupSize: 2}, {Activity: "B", GroupSize: 1}},
			"L2": {{Activity: "B", GroupSize: 1}},
		})
}

func TestFiltered_Colourings(t *testing.T) {
	game := prefGame(t)

	t.Run("draws only from each leaf's acceptable colours", func(t *testing.T) {
		s := NewFiltered(WithTrials(100))

		for _, col := range collectWith(t, s, game, []string{"A", "B"}, newRand(1)) {
			require.Contains(t, []string{"A", "B", types.VoidActivity}, col["L1"])
			// L2 never lists A, so A must never be drawn for it.
			require.Contains(t, []string{"B", types.VoidActivity}, col["L2"])
		}
	})

	t.Run("leaf with no acceptable colour in subset is assigned void", func(t *testing.T) {
		s := NewFiltered(WithTrials(20))

		for _, col := range collectWith(t, s, game, []string{"A"}, newRand(1)) {
			require.Equal(t, types.VoidActivity, col["L2"])
		}
	})

	t.Run("same seed reproduces the sequence", func(t *testing.T) {
		s := NewFiltered(WithTrials(40))

		first := collectWith(t, s, game, []string{"A", "B"}, newRand(11))
		second := collectWith(t, s, game, []string{"A", "B"}, newRand(11))

		require.Equal(t, first, second)
	})
}
