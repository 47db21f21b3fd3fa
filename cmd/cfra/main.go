// Command cfra searches scenario files for Nash-stable assignments.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	cfra "github.com/Myst4ke/cfra-project"
	"github.com/Myst4ke/cfra-project/internal/logging"
	"github.com/Myst4ke/cfra-project/sampler"
	"github.com/Myst4ke/cfra-project/scenario"
	"github.com/Myst4ke/cfra-project/types"
)

var (
	flagAll          bool
	flagSampler      string
	flagSeed         uint64
	flagTrials       int
	flagParallel     int
	flagUnrestricted bool
	flagVerbose      bool
)

func main() {
	root := &cobra.Command{
		Use:           "cfra",
		Short:         "Nash-stable assignment search for star-shaped hedonic games",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solve := &cobra.Command{
		Use:   "solve FILE",
		Short: "Search a scenario for a stable assignment",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solve.Flags().BoolVar(&flagAll, "all", false, "enumerate every stable assignment instead of the first")
	solve.Flags().StringVar(&flagSampler, "sampler", "uniform", "sampling strategy: cyclic, uniform, filtered, weighted, exhaustive")
	solve.Flags().Uint64Var(&flagSeed, "seed", 1, "base seed for the random samplers")
	solve.Flags().IntVar(&flagTrials, "trials", 0, "trials per search unit for the random samplers (0 = default)")
	solve.Flags().IntVar(&flagParallel, "parallel", 1, "number of search worker goroutines")
	solve.Flags().BoolVar(&flagUnrestricted, "unrestricted", false, "widen preference-style subset search to the full power set")
	solve.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log search progress")

	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the parsed scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	root.AddCommand(solve, show)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	game, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	s, err := samplerByName(flagSampler, flagTrials)
	if err != nil {
		return err
	}

	cfg := cfra.Config{
		Seed:                flagSeed,
		Parallelism:         flagParallel,
		UnrestrictedSubsets: flagUnrestricted,
	}

	opts := []cfra.Option{}
	if flagVerbose {
		opts = append(opts, cfra.WithLogger(logging.NewSlogDefault()))
	}

	eng, err := cfra.New(&cfg, game, s, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()

	if flagAll {
		results, err := eng.FindAll(ctx)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		if len(results) == 0 {
			fmt.Printf("no stable assignment found (%s, %d candidates verified)\n",
				elapsed.Round(time.Microsecond), eng.Stats().Verified)

			return nil
		}
		fmt.Printf("%d stable assignment(s) found in %s:\n", len(results), elapsed.Round(time.Microsecond))
		for _, a := range results {
			printAssignment(a)
		}

		return nil
	}

	result, err := eng.FindOne(ctx)
	elapsed := time.Since(start)
	if errors.Is(err, cfra.ErrExhausted) {
		fmt.Printf("no stable assignment found (%s, %d candidates verified)\n",
			elapsed.Round(time.Microsecond), eng.Stats().Verified)

		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("stable assignment found in %s:\n", elapsed.Round(time.Microsecond))
	printAssignment(result)

	return nil
}

func runShow(_ *cobra.Command, args []string) error {
	game, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("style:          %s\n", game.Style())
	fmt.Printf("central player: %s\n", game.CentralPlayer())
	fmt.Printf("leaf players:   %d\n", game.LeafCount())
	fmt.Println("activities:")
	for _, activity := range game.Activities() {
		if game.Style() == types.StyleCapacity {
			fmt.Printf("  %s (capacity %s)\n", activity, game.Capacity(activity))
		} else {
			fmt.Printf("  %s\n", activity)
		}
	}
	if game.Style() == types.StylePreference {
		fmt.Println("preferences:")
		players := append([]string{game.CentralPlayer()}, game.LeafPlayers()...)
		for _, player := range players {
			prefs, _ := game.Preferences(player)
			fmt.Printf("  %s: %s\n", player, prefs)
		}
	}

	return nil
}

// printAssignment renders one assignment with players in stable order.
func printAssignment(a cfra.Assignment) {
	fmt.Printf("  %s -> %s (group size %d)\n", a.Center, a.CenterActivity, a.GroupSize)
	leaves := make([]string, 0, len(a.Leaves))
	for leaf := range a.Leaves {
		leaves = append(leaves, leaf)
	}
	sort.Strings(leaves)
	for _, leaf := range leaves {
		fmt.Printf("  %s -> %s\n", leaf, a.Leaves[leaf])
	}
}

// samplerByName builds the sampling strategy named on the command line.
func samplerByName(name string, trials int) (types.ColouringSampler, error) {
	var opts []sampler.Option
	if trials > 0 {
		opts = append(opts, sampler.WithTrials(trials))
	}

	switch name {
	case "cyclic":
		return sampler.NewCyclic(opts...), nil
	case "uniform":
		return sampler.NewUniform(opts...), nil
	case "filtered":
		return sampler.NewFiltered(opts...), nil
	case "weighted":
		return sampler.NewWeighted(opts...), nil
	case "exhaustive":
		return sampler.NewExhaustive(), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q", name)
	}
}
