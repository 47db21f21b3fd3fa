package cfra

// CenterHypotheses enumerates the center hypothesis space of a game.
//
// Capacity style: for every declared activity, every group size k from 1 to
// min(capacity, leaf count + 1) is emitted, activity-major then ascending k.
// Unbounded capacities are clipped to leaf count + 1, since a group can
// never exceed the total population. The ordering has no semantic effect
// but is deterministic, so search traces are reproducible.
//
// Preference style: the central player's preference list is emitted
// verbatim, in its declared order. The central player's hypothesis space is
// defined by its stated preferences, not derived from capacities.
//
// Parameters:
//   - game: Validated game model
//
// Returns:
//   - []CenterHypothesis: Deterministically ordered hypothesis space
func CenterHypotheses(game *Game) []CenterHypothesis {
	if game.Style() == StylePreference {
		prefs, _ := game.Preferences(game.CentralPlayer())
		out := make([]CenterHypothesis, len(prefs))
		for i, entry := range prefs {
			out[i] = CenterHypothesis{Activity: entry.Activity, GroupSize: entry.GroupSize}
		}

		return out
	}

	maxGroup := game.LeafCount() + 1
	var out []CenterHypothesis
	for _, activity := range game.Activities() {
		limit := maxGroup
		if c := game.Capacity(activity); c.IsBounded() && c.Max() < limit {
			limit = c.Max()
		}
		for k := 1; k <= limit; k++ {
			out = append(out, CenterHypothesis{Activity: activity, GroupSize: k})
		}
	}

	return out
}

// ActivitySubsets enumerates the candidate "activities in use" subsets of a
// game.
//
// Capacity style: every non-empty subset of the declared activities,
// ordered by increasing subset size and then by declared activity order.
// The enumeration is deliberately exhaustive: the central player's chosen
// activity need not be the only one in use, since leaves may occupy other
// activities.
//
// Preference style: a single subset holding the activities appearing
// anywhere in the central player's preference list. This narrowing trades
// completeness for tractability; pass unrestricted=true to fall back to
// the full power set.
//
// Parameters:
//   - game: Validated game model
//   - unrestricted: Use the full power set for preference-style games too
//
// Returns:
//   - [][]string: Deterministically ordered subsets, each in declared activity order
func ActivitySubsets(game *Game, unrestricted bool) [][]string {
	if game.Style() == StylePreference && !unrestricted {
		prefs, _ := game.Preferences(game.CentralPlayer())

		return [][]string{prefs.Activities()}
	}

	return powerSet(game.Activities())
}

// powerSet returns every non-empty subset of activities, smallest first,
// ties broken by declared order (standard combination enumeration).
func powerSet(activities []string) [][]string {
	n := len(activities)
	var out [][]string
	for size := 1; size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			subset := make([]string, size)
			for i, j := range idx {
				subset[i] = activities[j]
			}
			out = append(out, subset)

			// Advance the combination odometer.
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return out
}
