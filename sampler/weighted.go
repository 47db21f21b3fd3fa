package sampler

import (
	"iter"
	"math/rand/v2"

	"github.com/Myst4ke/cfra-project/types"
)

// Weighted implements rank-weighted preference random colouring.
type Weighted struct {
	trials int
}

var _ types.ColouringSampler = (*Weighted)(nil)

// weightedColour is one entry of a leaf's sampling distribution.
type weightedColour struct {
	colour string
	weight int
}

// NewWeighted creates a new rank-weighted random sampler.
//
// Like Filtered, each leaf draws only from colours in both the active
// subset and its own preference list, plus void — but a colour at rank r in
// a preference list of length n carries weight n-r, so earlier-ranked
// preferences are sampled proportionally more often. Void always carries
// the minimum weight of 1.
//
// Parameters:
//   - opts: Optional configuration (WithTrials)
//
// Returns:
//   - *Weighted: Initialized sampler
func NewWeighted(opts ...Option) *Weighted {
	s := newSettings(opts)

	return &Weighted{trials: s.trials}
}

// Name returns "weighted".
func (w *Weighted) Name() string { return "weighted" }

// Colourings yields trials rank-weighted colourings.
func (w *Weighted) Colourings(game *types.Game, subset []string, rng *rand.Rand) iter.Seq[types.Colouring] {
	leaves := game.LeafPlayers()
	domains := make([][]weightedColour, len(leaves))
	totals := make([]int, len(leaves))
	for i, leaf := range leaves {
		domains[i] = weightedDomain(game, leaf, subset)
		for _, wc := range domains[i] {
			totals[i] += wc.weight
		}
	}

	return func(yield func(types.Colouring) bool) {
		for range w.trials {
			col := make(types.Colouring, len(leaves))
			for i, leaf := range leaves {
				col[leaf] = pickWeighted(domains[i], totals[i], rng)
			}
			if !yield(col) {
				return
			}
		}
	}
}

func weightedDomain(game *types.Game, leaf string, subset []string) []weightedColour {
	prefs, ok := game.Preferences(leaf)
	domain := make([]weightedColour, 0, len(subset)+1)
	if ok {
		for _, a := range subset {
			rank := prefs.Rank(a)
			if rank < 0 {
				continue
			}
			domain = append(domain, weightedColour{colour: a, weight: len(prefs) - rank})
		}
	}
	domain = append(domain, weightedColour{colour: types.VoidActivity, weight: 1})

	return domain
}

func pickWeighted(domain []weightedColour, total int, rng *rand.Rand) string {
	r := rng.IntN(total)
	for _, wc := range domain {
		r -= wc.weight
		if r < 0 {
			return wc.colour
		}
	}

	// Unreachable when total matches the domain weights.
	return domain[len(domain)-1].colour
}
