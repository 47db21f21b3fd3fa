package cfra

import "github.com/Myst4ke/cfra-project/types"

// Re-export sentinel errors from the types subpackage so callers can match
// them with errors.Is without importing types directly.
var (
	// ErrInvalidGame is returned when a game description is malformed or
	// inconsistent.
	ErrInvalidGame = types.ErrInvalidGame

	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrGameRequired is returned by New when the game is nil.
	ErrGameRequired = types.ErrGameRequired

	// ErrSamplerRequired is returned by New when the sampler is nil.
	ErrSamplerRequired = types.ErrSamplerRequired

	// ErrExhausted is returned by FindOne when the explored space contains
	// no stable assignment. It is a defined outcome, not a failure.
	ErrExhausted = types.ErrExhausted

	// ErrInvalidScenario is returned when a scenario file cannot be parsed.
	ErrInvalidScenario = types.ErrInvalidScenario
)
