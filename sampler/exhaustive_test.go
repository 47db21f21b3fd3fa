package sampler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	cfratest "github.com/Myst4ke/cfra-project/testing"
	"github.com/Myst4ke/cfra-project/types"
)

func colouringKey(col types.Colouring, leaves []string) string {
	key := ""
	for _, leaf := range leaves {
		key += col[leaf] + "|"
	}

	return key
}

func TestExhaustive_Colourings(t *testing.T) {
	t.Run("capacity style enumerates the full product", func(t *testing.T) {
		game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"}, []string{"A", "B"}, nil)
		s := NewExhaustive()

		cols := collectWith(t, s, game, []string{"A", "B"}, newRand(1))

		// Two leaves over {A, B, void}: 3^2 distinct colourings.
		require.Len(t, cols, 9)

		distinct := map[string]struct{}{}
		for _, col := range cols {
			distinct[colouringKey(col, []string{"L1", "L2"})] = struct{}{}
		}
		require.Len(t, distinct, 9)
	})

	t.Run("preference style restricts per-leaf domains", func(t *testing.T) {
		game := prefGame(t)
		s := NewExhaustive()

		cols := collectWith(t, s, game, []string{"A", "B"}, newRand(1))

		// L1 ranges over {A, B, void}, L2 over {B, void}: 3*2 colourings.
		require.Len(t, cols, 6)
		for _, col := range cols {
			require.Contains(t, []string{"B", types.VoidActivity}, col["L2"])
		}
	})

	t.Run("odometer order is deterministic", func(t *testing.T) {
		game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"}, []string{"A"}, nil)
		s := NewExhaustive()

		cols := collectWith(t, s, game, []string{"A"}, newRand(1))

		require.Len(t, cols, 4)
		require.Equal(t, types.Colouring{"L1": "A", "L2": "A"}, cols[0])
		require.Equal(t, types.Colouring{"L1": "A", "L2": types.VoidActivity}, cols[1])
		require.Equal(t, types.Colouring{"L1": types.VoidActivity, "L2": "A"}, cols[2])
		require.Equal(t, types.Colouring{"L1": types.VoidActivity, "L2": types.VoidActivity}, cols[3])
	})

	t.Run("zero leaves yields one empty colouring", func(t *testing.T) {
		game := cfratest.MustCapacityGame(t, "C", nil, []string{"A"}, nil)
		s := NewExhaustive()

		cols := collectWith(t, s, game, []string{"A"}, newRand(1))

		require.Len(t, cols, 1)
		require.Empty(t, cols[0])
	})

	t.Run("contains every colouring any random sampler can draw", func(t *testing.T) {
		game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"}, []string{"A", "B"}, nil)
		leaves := []string{"L1", "L2"}

		full := map[string]struct{}{}
		for _, col := range collectWith(t, NewExhaustive(), game, []string{"A", "B"}, newRand(1)) {
			full[colouringKey(col, leaves)] = struct{}{}
		}

		for seed := uint64(1); seed <= 3; seed++ {
			for _, col := range collectWith(t, NewUniform(WithTrials(50)), game, []string{"A", "B"}, newRand(seed)) {
				_, ok := full[colouringKey(col, leaves)]
				require.True(t, ok, fmt.Sprintf("uniform drew %v outside the exhaustive product", col))
			}
		}
	})
}
