// Package cfra provides a guess-and-check search engine for Nash-stable
// assignments in star-shaped hedonic coalition games.
//
// A game has one central player and a set of leaf players, each choosing a
// declared activity or opting out via the reserved void activity. Players
// are constrained either by per-activity capacities or by ranked
// (activity, group size) preference lists. The engine enumerates hypotheses
// about the central player's outcome, candidate subsets of activities "in
// use", and sampled leaf colourings, and verifies every triple against the
// Nash stability predicate.
//
// # Quick Start
//
// Basic usage with a capacity-style game:
//
//	import (
//	    "github.com/Myst4ke/cfra-project"
//	    "github.com/Myst4ke/cfra-project/sampler"
//	)
//
//	game, err := cfra.NewCapacityGame("C", []string{"L1", "L2"},
//	    []string{"hiking", "bus_trip"},
//	    map[string]cfra.Capacity{"hiking": cfra.Limit(2), "bus_trip": cfra.Limit(1)},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := cfra.Config{Seed: 42}
//	eng, err := cfra.New(&cfg, game, sampler.NewUniform())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.FindOne(ctx)
//	if errors.Is(err, cfra.ErrExhausted) {
//	    // No stable assignment in the sampled space.
//	}
//
// # Key Features
//
//   - Unified Verifier: one stability predicate parameterized by the
//     constraint style (capacity bounds vs. preference membership)
//   - Five Sampling Strategies: cyclic, uniform, preference-filtered,
//     rank-weighted, and exhaustive enumeration
//   - Reproducible Search: explicit injected random sources seeded per
//     search unit, deterministic at any parallelism level
//   - Parallel Search: (hypothesis, subset) units distributed across
//     worker goroutines, with cancellation on first find
//   - Find-All Mode: exhaustive enumeration of every stable assignment,
//     deduplicated across search routes
//
// # Architecture
//
// A search progresses through a state machine:
//
//	SelectCenter → SelectSubset → Sample → Verify → (Found | Exhausted)
//
// Found is terminal only for find-one searches; find-all keeps cycling
// until every hypothesis is spent.
//
// # Advanced Usage
//
// Weighted sampling with options:
//
//	import (
//	    "github.com/Myst4ke/cfra-project"
//	    "github.com/Myst4ke/cfra-project/sampler"
//	)
//
//	s := sampler.NewWeighted(sampler.WithTrials(500))
//
//	hooks := &cfra.Hooks{
//	    OnStableFound: func(ctx context.Context, a cfra.Assignment) error {
//	        fmt.Println(a)
//	        return nil
//	    },
//	}
//
//	eng, err := cfra.New(&cfg, game, s,
//	    cfra.WithHooks(hooks),
//	    cfra.WithLogger(logger),
//	)
//
// Scenario files are parsed by the scenario subpackage; the cmd/cfra
// command wires parsing, searching, and reporting together.
package cfra
