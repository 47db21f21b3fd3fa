package cfra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Myst4ke/cfra-project/internal/key"
	"github.com/Myst4ke/cfra-project/sampler"
	cfratest "github.com/Myst4ke/cfra-project/testing"
	"github.com/Myst4ke/cfra-project/types"
)

func capacityScenario(t *testing.T) *Game {
	t.Helper()

	return cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"},
		[]string{"A", "B"},
		map[string]types.Capacity{"A": types.Limit(2), "B": types.Limit(1)},
	)
}

func restrictedPreferenceScenario(t *testing.T) *Game {
	t.Helper()

	return cfratest.MustPreferenceGame(t, "C", []string{"L1", "L2"},
		[]string{"A", "B"},
		map[string]types.PreferenceList{
			"C":  {{Activity: "A", GroupSize: 2}},
			"L1": {{Activity: "A", GroupSize: 2}},
			"L2": {{Activity: "B", GroupSize: 1}},
		},
	)
}

// assertStableProperties checks the invariants every stable assignment must
// carry: the leaf occupancy of the center's activity matches the hypothesis
// group size, and no occupied activity exceeds its capacity.
func assertStableProperties(t *testing.T, game *Game, a Assignment) {
	t.Helper()

	occ := make(map[string]int)
	for _, activity := range a.Leaves {
		occ[activity]++
	}
	require.Equal(t, a.GroupSize, occ[a.CenterActivity], "assignment %s", a)
	for leaf, activity := range a.Leaves {
		if activity == VoidActivity {
			continue
		}
		require.True(t, game.Capacity(activity).Allows(occ[activity]),
			"leaf %s exceeds capacity of %s in %s", leaf, activity, a)
	}
}

func TestNew(t *testing.T) {
	game := capacityScenario(t)

	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil, game, sampler.NewUniform())
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil game", func(t *testing.T) {
		_, err := New(&Config{}, nil, sampler.NewUniform())
		require.ErrorIs(t, err, ErrGameRequired)
	})

	t.Run("nil sampler", func(t *testing.T) {
		_, err := New(&Config{}, game, nil)
		require.ErrorIs(t, err, ErrSamplerRequired)
	})

	t.Run("invalid parallelism", func(t *testing.T) {
		_, err := New(&Config{Parallelism: -1}, game, sampler.NewUniform())
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("defaults applied", func(t *testing.T) {
		eng, err := New(&Config{}, game, sampler.NewUniform())
		require.NoError(t, err)
		require.Equal(t, StateIdle, eng.State())
	})
}

func TestFindOneCapacity(t *testing.T) {
	eng, err := New(&Config{Seed: 1}, capacityScenario(t), sampler.NewExhaustive(),
		WithLogger(cfratest.NewTestLogger(t)))
	require.NoError(t, err)

	result, err := eng.FindOne(context.Background())
	require.NoError(t, err)

	// The first stable triple in traversal order: hypothesis (A, 1) with
	// both activities in use, leaves split across A and B.
	require.Equal(t, Assignment{
		Center:         "C",
		CenterActivity: "A",
		GroupSize:      1,
		Leaves:         Colouring{"L1": "A", "L2": "B"},
	}, result)

	require.Equal(t, StateFound, eng.State())
	stats := eng.Stats()
	require.Equal(t, int64(1), stats.Found)
	require.Positive(t, stats.Verified)
}

func TestFindOnePreferenceRestricted(t *testing.T) {
	// The center-derived subset excludes B, the only activity L2 accepts,
	// so even exhaustive enumeration comes up empty.
	eng, err := New(&Config{Seed: 1}, restrictedPreferenceScenario(t), sampler.NewExhaustive())
	require.NoError(t, err)

	_, err = eng.FindOne(context.Background())
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, StateExhausted, eng.State())
}

func TestFindOnePreferenceStable(t *testing.T) {
	game := cfratest.MustPreferenceGame(t, "C", []string{"L1", "L2"},
		[]string{"A"},
		map[string]types.PreferenceList{
			"C":  {{Activity: "A", GroupSize: 2}},
			"L1": {{Activity: "A", GroupSize: 2}},
			"L2": {{Activity: "A", GroupSize: 2}},
		},
	)
	eng, err := New(&Config{Seed: 1}, game, sampler.NewExhaustive())
	require.NoError(t, err)

	result, err := eng.FindOne(context.Background())
	require.NoError(t, err)
	require.Equal(t, Colouring{"L1": "A", "L2": "A"}, result.Leaves)
	require.Equal(t, "A", result.CenterActivity)
	require.Equal(t, 2, result.GroupSize)
}

func TestFindOneDeterministic(t *testing.T) {
	run := func() (Assignment, error) {
		eng, err := New(&Config{Seed: 7}, capacityScenario(t), sampler.NewUniform())
		require.NoError(t, err)

		return eng.FindOne(context.Background())
	}

	first, errFirst := run()
	second, errSecond := run()
	require.Equal(t, errFirst, errSecond)
	require.Equal(t, first, second)
}

func TestFindOneCancellation(t *testing.T) {
	eng, err := New(&Config{Seed: 1}, capacityScenario(t), sampler.NewExhaustive())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.FindOne(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindOneHooks(t *testing.T) {
	var emitted []Assignment
	hooks := &Hooks{
		OnStableFound: func(_ context.Context, a Assignment) error {
			emitted = append(emitted, a)
			return nil
		},
	}

	eng, err := New(&Config{Seed: 1}, capacityScenario(t), sampler.NewExhaustive(), WithHooks(hooks))
	require.NoError(t, err)

	result, err := eng.FindOne(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Assignment{result}, emitted)
}

func TestFindAll(t *testing.T) {
	t.Run("capacity scenario yields symmetric splits", func(t *testing.T) {
		eng, err := New(&Config{Seed: 1}, capacityScenario(t), sampler.NewCyclic())
		require.NoError(t, err)

		results, err := eng.FindAll(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, results)

		require.Contains(t, results, Assignment{
			Center: "C", CenterActivity: "A", GroupSize: 1,
			Leaves: Colouring{"L1": "A", "L2": "B"},
		})
		require.Contains(t, results, Assignment{
			Center: "C", CenterActivity: "A", GroupSize: 1,
			Leaves: Colouring{"L1": "B", "L2": "A"},
		})

		// No duplicates across search routes.
		seen := make(map[uint64]struct{}, len(results))
		for _, a := range results {
			digest := key.Digest(a)
			_, dup := seen[digest]
			require.False(t, dup, "duplicate assignment %s", a)
			seen[digest] = struct{}{}
		}

		// Every result honors the stability invariants.
		game := capacityScenario(t)
		for _, a := range results {
			assertStableProperties(t, game, a)
		}

		require.Equal(t, StateExhausted, eng.State())
	})

	t.Run("restricted preference scenario yields nothing", func(t *testing.T) {
		eng, err := New(&Config{Seed: 1}, restrictedPreferenceScenario(t), sampler.NewExhaustive())
		require.NoError(t, err)

		results, err := eng.FindAll(context.Background())
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("unrestricted subsets still find nothing here", func(t *testing.T) {
		// Widening the subset space lets the search consider B, but C's own
		// preference (A, 2) still requires both leaves on A, so the space
		// stays empty. The flag only changes what is explored.
		eng, err := New(&Config{Seed: 1, UnrestrictedSubsets: true},
			restrictedPreferenceScenario(t), sampler.NewExhaustive())
		require.NoError(t, err)

		results, err := eng.FindAll(context.Background())
		require.NoError(t, err)
		require.Empty(t, results)
	})
}

func TestFindAllParallelMatchesSequential(t *testing.T) {
	digests := func(parallelism int) map[uint64]struct{} {
		eng, err := New(&Config{Seed: 3, Parallelism: parallelism}, capacityScenario(t), sampler.NewCyclic())
		require.NoError(t, err)

		results, err := eng.FindAll(context.Background())
		require.NoError(t, err)

		out := make(map[uint64]struct{}, len(results))
		for _, a := range results {
			out[key.Digest(a)] = struct{}{}
		}

		return out
	}

	require.Equal(t, digests(1), digests(4))
}

func TestFindOneParallel(t *testing.T) {
	eng, err := New(&Config{Seed: 3, Parallelism: 4}, capacityScenario(t), sampler.NewExhaustive())
	require.NoError(t, err)

	result, err := eng.FindOne(context.Background())
	require.NoError(t, err)

	// Any stable assignment is acceptable in parallel mode.
	assertStableProperties(t, capacityScenario(t), result)
	require.Equal(t, StateFound, eng.State())
}

func TestSampledResultsWithinExhaustive(t *testing.T) {
	// Whatever a heuristic sampler finds must also be discoverable by the
	// exhaustive find-all traversal.
	all, err := New(&Config{Seed: 5}, capacityScenario(t), sampler.NewExhaustive())
	require.NoError(t, err)
	complete, err := all.FindAll(context.Background())
	require.NoError(t, err)

	completeDigests := make(map[uint64]struct{}, len(complete))
	for _, a := range complete {
		completeDigests[key.Digest(a)] = struct{}{}
	}

	samplers := []ColouringSampler{
		sampler.NewCyclic(),
		sampler.NewUniform(),
		sampler.NewFiltered(),
		sampler.NewWeighted(),
	}
	for _, s := range samplers {
		t.Run(s.Name(), func(t *testing.T) {
			eng, err := New(&Config{Seed: 5}, capacityScenario(t), s)
			require.NoError(t, err)

			result, err := eng.FindOne(context.Background())
			if err != nil {
				require.ErrorIs(t, err, ErrExhausted)
				return
			}
			require.Contains(t, completeDigests, key.Digest(result))
		})
	}
}
