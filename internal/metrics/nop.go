// Package metrics provides metrics collector implementations for the cfra
// library.
package metrics

import "github.com/Myst4ke/cfra-project/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SearchMetrics implementation

// RecordStateTransition discards the state transition metric.
func (n *NopMetrics) RecordStateTransition(_ /* from */, _ /* to */ types.State) {
	// No-op
}

// RecordHypothesisCount discards the hypothesis count metric.
func (n *NopMetrics) RecordHypothesisCount(_ /* count */ int) {
	// No-op
}

// RecordSearchDuration discards the search duration metric.
func (n *NopMetrics) RecordSearchDuration(_ /* seconds */ float64, _ /* mode */ string) {
	// No-op
}

// RecordStableFound discards the stable assignment metric.
func (n *NopMetrics) RecordStableFound(_ /* mode */ string) {
	// No-op
}

// VerifierMetrics implementation

// RecordVerification discards the verification metric.
func (n *NopMetrics) RecordVerification(_ /* stable */ bool) {
	// No-op
}
