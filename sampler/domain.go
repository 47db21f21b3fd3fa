package sampler

import (
	"github.com/Myst4ke/cfra-project/types"
)

// colourList returns the full colour list for a subset: the subset's
// activities in order, followed by the void activity.
func colourList(subset []string) []string {
	colours := make([]string, 0, len(subset)+1)
	colours = append(colours, subset...)
	colours = append(colours, types.VoidActivity)

	return colours
}

// filteredColours returns the colours a leaf could ever accept: the subset
// activities mentioned anywhere in the leaf's preference list, followed by
// the void activity. A leaf without preferences gets the void activity
// alone, never an empty domain.
func filteredColours(game *types.Game, leaf string, subset []string) []string {
	prefs, ok := game.Preferences(leaf)
	colours := make([]string, 0, len(subset)+1)
	if ok {
		for _, a := range subset {
			if prefs.AcceptsActivity(a) {
				colours = append(colours, a)
			}
		}
	}
	colours = append(colours, types.VoidActivity)

	return colours
}
