package types

import "context"

// Hooks defines callbacks for search lifecycle events.
//
// All hooks are optional. They are invoked synchronously on the searching
// goroutine (a find-all over an exhaustive space can fire OnStableFound
// many times), so implementations should complete quickly and respect
// context cancellation. Hook errors are logged but never abort the search.
type Hooks struct {
	// OnStateChanged is called when the search state transitions.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnStableFound is called for every stable assignment the search emits.
	OnStableFound func(ctx context.Context, assignment Assignment) error
}
