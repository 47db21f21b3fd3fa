package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignment(t *testing.T) {
	a := Assignment{
		Center:         "C",
		CenterActivity: "A",
		GroupSize:      2,
		Leaves:         Colouring{"L1": "A", "L2": VoidActivity},
	}

	t.Run("activity lookup covers center and leaves", func(t *testing.T) {
		activity, ok := a.Activity("C")
		require.True(t, ok)
		require.Equal(t, "A", activity)

		activity, ok = a.Activity("L2")
		require.True(t, ok)
		require.Equal(t, VoidActivity, activity)

		_, ok = a.Activity("ghost")
		require.False(t, ok)
	})

	t.Run("occupancy includes the center", func(t *testing.T) {
		occ := a.Occupancy()

		require.Equal(t, 2, occ["A"])
		require.Equal(t, 1, occ[VoidActivity])
	})

	t.Run("string renders players in sorted order", func(t *testing.T) {
		require.Equal(t, "C→A(2) L1→A L2→void", a.String())
	})
}

func TestColouringClone(t *testing.T) {
	c := Colouring{"L1": "A"}
	clone := c.Clone()
	clone["L1"] = "B"

	require.Equal(t, "A", c["L1"])
	require.Equal(t, "B", clone["L1"])
}
