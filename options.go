package cfra

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets search lifecycle hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &cfra.Hooks{
//	    OnStableFound: func(ctx context.Context, a cfra.Assignment) error {
//	        return record(a)
//	    },
//	}
//	eng, _ := cfra.New(&cfg, game, sampler, cfra.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "cfra")
//	eng, _ := cfra.New(&cfg, game, sampler, cfra.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	eng, _ := cfra.New(&cfg, game, sampler, cfra.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
