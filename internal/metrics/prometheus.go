package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Myst4ke/cfra-project/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	stateTransitions *prometheus.CounterVec
	hypothesisGauge  prometheus.Gauge
	searchDuration   *prometheus.HistogramVec
	stableFound      *prometheus.CounterVec
	verifications    *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "cfra" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "cfra"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "state_transitions_total",
			Help:      "Total search state transitions by source and target state.",
		}, []string{"from", "to"})

		p.hypothesisGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "hypotheses_current",
			Help:      "Size of the center hypothesis space of the current search.",
		})

		p.searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of completed searches in seconds by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~262s
		}, []string{"mode"})

		p.stableFound = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "stable_assignments_total",
			Help:      "Total stable assignments emitted by mode.",
		}, []string{"mode"})

		p.verifications = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "verifier",
			Name:      "verifications_total",
			Help:      "Total stability predicate evaluations by outcome.",
		}, []string{"result"})

		for _, c := range []prometheus.Collector{
			p.stateTransitions, p.hypothesisGauge, p.searchDuration, p.stableFound, p.verifications,
		} {
			p.reg.MustRegister(c)
		}
	})
}

// RecordStateTransition counts a search state transition.
func (p *PrometheusCollector) RecordStateTransition(from, to types.State) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// RecordHypothesisCount sets the hypothesis space gauge.
func (p *PrometheusCollector) RecordHypothesisCount(count int) {
	p.ensureRegistered()
	p.hypothesisGauge.Set(float64(count))
}

// RecordSearchDuration observes a completed search duration.
func (p *PrometheusCollector) RecordSearchDuration(seconds float64, mode string) {
	p.ensureRegistered()
	p.searchDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordStableFound counts one stable assignment emission.
func (p *PrometheusCollector) RecordStableFound(mode string) {
	p.ensureRegistered()
	p.stableFound.WithLabelValues(mode).Inc()
}

// RecordVerification counts one stability predicate evaluation.
func (p *PrometheusCollector) RecordVerification(stable bool) {
	p.ensureRegistered()
	result := "rejected"
	if stable {
		result = "stable"
	}
	p.verifications.WithLabelValues(result).Inc()
}
