package types

// MetricsCollector defines methods for recording search metrics.
//
// Implementations must be non-blocking and thread-safe: the verifier hot
// path calls RecordVerification for every candidate colouring, possibly
// from several worker goroutines.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	SearchMetrics
	VerifierMetrics
}

// SearchMetrics defines metrics for orchestrator-level events.
type SearchMetrics interface {
	// RecordStateTransition records a search state transition.
	RecordStateTransition(from, to State)

	// RecordHypothesisCount sets the size of the center hypothesis space
	// for the current search (gauge metric).
	RecordHypothesisCount(count int)

	// RecordSearchDuration records a completed search.
	//
	// Parameters:
	//   - seconds: Wall-clock duration of the search
	//   - mode: Search mode ("find_one" or "find_all")
	RecordSearchDuration(seconds float64, mode string)

	// RecordStableFound records one stable assignment emission.
	//
	// Parameters:
	//   - mode: Search mode ("find_one" or "find_all")
	RecordStableFound(mode string)
}

// VerifierMetrics defines metrics for the stability predicate hot path.
type VerifierMetrics interface {
	// RecordVerification records one predicate evaluation.
	//
	// Parameters:
	//   - stable: Outcome of the stability check
	RecordVerification(stable bool)
}
