// Package sampler provides colouring samplers for the stability search.
//
// A sampler draws candidate leaf→activity colourings for one
// (center hypothesis, activity subset) iteration. Five strategies are
// available:
//
//   - Cyclic: deterministic round-robin baseline
//   - Uniform: independent uniform draws over subset ∪ {void}
//   - Filtered: uniform draws restricted to each leaf's own preference list
//   - Weighted: preference draws weighted by rank, void weighted 1
//   - Exhaustive: the complete Cartesian product of per-leaf colour domains
//
// The randomized samplers are fixed-trial heuristics (default 100 trials per
// iteration), not derandomized colour-coding with success-probability
// bounds. Only the Exhaustive sampler guarantees completeness for a given
// (hypothesis, subset) pair, at a cost exponential in the leaf count.
//
// All samplers take an injected *rand.Rand so parallel search workers never
// share random state and runs are reproducible per seed.
package sampler
