package sampler

// defaultTrials is the number of colourings drawn per (hypothesis, subset)
// iteration by the randomized samplers. It is a heuristic bound, not
// derived from a target success probability.
const defaultTrials = 100

// Option configures a randomized sampler.
type Option func(*settings)

type settings struct {
	trials int
}

// WithTrials sets the number of colourings drawn per iteration.
//
// Values below 1 are ignored and the default (100) is kept.
//
// Parameters:
//   - n: Trial count per (hypothesis, subset) pair
//
// Returns:
//   - Option: Functional option for the sampler constructors
func WithTrials(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.trials = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{trials: defaultTrials}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}
