package types

import "errors"

// Sentinel errors for the cfra library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context via
// fmt.Errorf("…: %w", err) so callers can match the sentinel while still
// seeing the detail.

// Configuration errors - raised at build time, before any search runs.
var (
	// ErrInvalidGame is returned when a game description is malformed or
	// inconsistent: empty or duplicated player identifiers, non-positive
	// capacities, preference entries referencing undeclared activities, or
	// players missing a preference entry in preference-style games.
	ErrInvalidGame = errors.New("invalid game configuration")

	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameRequired is returned when the game is nil.
	ErrGameRequired = errors.New("game is required")

	// ErrSamplerRequired is returned when the colouring sampler is nil.
	ErrSamplerRequired = errors.New("colouring sampler is required")
)

// Search outcomes - defined results, not failures.
var (
	// ErrExhausted is returned by find-one when every explored
	// (hypothesis, subset, colouring) triple was rejected. It is a defined
	// outcome in the manner of io.EOF, not an execution failure: unless the
	// exhaustive sampler was used it does not prove that no stable
	// assignment exists, only that none was found within the sampled space.
	ErrExhausted = errors.New("search exhausted: no stable assignment found")
)

// Scenario errors - raised while loading scenario files.
var (
	// ErrInvalidScenario is returned when a scenario file cannot be parsed
	// into a well-formed game description.
	ErrInvalidScenario = errors.New("invalid scenario")
)
