package cfra

import "fmt"

// Config is the configuration for the search Engine.
type Config struct {
	// Seed is the base seed for the injected random sources. Every
	// (hypothesis, subset) search unit derives its own generator from
	// (Seed, unit index), so runs are reproducible for a fixed seed at any
	// parallelism level.
	Seed uint64 `yaml:"seed"`

	// Parallelism is the number of worker goroutines verifying search
	// units. 1 reproduces the single-threaded reference traversal order;
	// higher values distribute (hypothesis, subset) pairs across workers.
	//
	// Default: 1
	Parallelism int `yaml:"parallelism"`

	// UnrestrictedSubsets widens the activity subset space of
	// preference-style games from the single center-derived subset to the
	// full power set of declared activities.
	//
	// The default narrowing assumes leaves only ever use activities the
	// central player would also consider. That keeps the search small but
	// can make genuinely stable assignments unreachable; enable this flag
	// to trade runtime for completeness. Capacity-style games always use
	// the full power set and ignore the flag.
	UnrestrictedSubsets bool `yaml:"unrestrictedSubsets"`
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Configuration to update in place
func SetDefaults(cfg *Config) {
	if cfg.Parallelism == 0 {
		cfg.Parallelism = 1
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the first violation found
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidConfig, c.Parallelism)
	}

	return nil
}
