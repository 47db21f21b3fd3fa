package key

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Myst4ke/cfra-project/types"
)

func TestDigest(t *testing.T) {
	base := types.Assignment{
		Center:         "C",
		CenterActivity: "hiking",
		GroupSize:      2,
		Leaves:         types.Colouring{"L1": "hiking", "L2": types.VoidActivity},
	}

	t.Run("stable across calls", func(t *testing.T) {
		require.Equal(t, Digest(base), Digest(base))
	})

	t.Run("independent of leaf insertion order", func(t *testing.T) {
		reordered := types.Assignment{
			Center:         "C",
			CenterActivity: "hiking",
			GroupSize:      2,
			Leaves:         types.Colouring{"L2": types.VoidActivity, "L1": "hiking"},
		}
		require.Equal(t, Digest(base), Digest(reordered))
	})

	t.Run("sensitive to every field", func(t *testing.T) {
		variants := []types.Assignment{
			{Center: "D", CenterActivity: "hiking", GroupSize: 2, Leaves: base.Leaves},
			{Center: "C", CenterActivity: "bus_trip", GroupSize: 2, Leaves: base.Leaves},
			{Center: "C", CenterActivity: "hiking", GroupSize: 3, Leaves: base.Leaves},
			{Center: "C", CenterActivity: "hiking", GroupSize: 2,
				Leaves: types.Colouring{"L1": types.VoidActivity, "L2": "hiking"}},
		}
		for _, v := range variants {
			require.NotEqual(t, Digest(base), Digest(v), "variant %s", v)
		}
	})

	t.Run("separator keeps concatenations apart", func(t *testing.T) {
		a := types.Assignment{Center: "ab", CenterActivity: "c", GroupSize: 1, Leaves: types.Colouring{}}
		b := types.Assignment{Center: "a", CenterActivity: "bc", GroupSize: 1, Leaves: types.Colouring{}}
		require.NotEqual(t, Digest(a), Digest(b))
	})
}
