// Package testing provides test utilities for the cfra library.
//
// It follows Go's convention of providing testing helpers in a dedicated
// package (similar to net/http/httptest):
//
//   - NewTestLogger: types.Logger writing through testing.T
//   - MustCapacityGame / MustPreferenceGame: game builders that fail the
//     test instead of returning an error
//
// Example usage:
//
//	import cfratest "github.com/Myst4ke/cfra-project/testing"
//
//	func TestMyComponent(t *testing.T) {
//	    game := cfratest.MustCapacityGame(t, "C", []string{"L1", "L2"},
//	        []string{"A", "B"}, map[string]types.Capacity{"A": types.Limit(2)})
//	    // ...
//	}
package testing
