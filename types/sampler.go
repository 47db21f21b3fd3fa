package types

import (
	"iter"
	"math/rand/v2"
)

// ColouringSampler produces candidate leaf→activity colourings for one
// (hypothesis, activity subset) search iteration.
//
// Samplers implement different drawing strategies:
//   - Cyclic: deterministic round-robin baseline
//   - Uniform: independent uniform draws per leaf
//   - Filtered: uniform draws restricted to each leaf's own preferences
//   - Weighted: preference draws weighted by rank
//   - Exhaustive: the full Cartesian product of per-leaf colour domains
//
// Sampler implementations must:
//   - Yield complete colourings only (every leaf mapped, never omitted)
//   - Draw colours from the given subset plus VoidActivity exclusively
//   - Assign VoidActivity to a leaf whose colour domain is empty, never fail
//   - Take all randomness from the injected source, never from global state
//   - Leave the Game untouched (read-only shared model)
type ColouringSampler interface {
	// Name returns a short stable identifier for logs and metrics,
	// e.g. "uniform".
	Name() string

	// Colourings returns a finite sequence of candidate colourings of the
	// leaf players over subset ∪ {VoidActivity}.
	//
	// The sequence may be lazily produced (the exhaustive sampler streams
	// its Cartesian product) but is always finite and re-iterable.
	//
	// Parameters:
	//   - game: Read-only game model
	//   - subset: Activity subset "in use" for this iteration
	//   - rng: Injected random source; deterministic samplers ignore it
	Colourings(game *Game, subset []string, rng *rand.Rand) iter.Seq[Colouring]
}
