package testing

import (
	"testing"

	"github.com/Myst4ke/cfra-project/types"
)

// MustCapacityGame builds a capacity-style game and fails the test on a
// configuration error.
func MustCapacityGame(t *testing.T, central string, leaves, activities []string, capacities map[string]types.Capacity) *types.Game {
	t.Helper()

	game, err := types.NewCapacityGame(central, leaves, activities, capacities)
	if err != nil {
		t.Fatalf("building capacity game: %v", err)
	}

	return game
}

// MustPreferenceGame builds a preference-style game and fails the test on a
// configuration error.
func MustPreferenceGame(t *testing.T, central string, leaves, activities []string, preferences map[string]types.PreferenceList) *types.Game {
	t.Helper()

	game, err := types.NewPreferenceGame(central, leaves, activities, preferences)
	if err != nil {
		t.Fatalf("building preference game: %v", err)
	}

	return game
}
