// Package key computes canonical digests of assignments.
//
// Find-all searches can reach the same stable assignment through different
// (hypothesis, subset) routes; the digest lets the engine deduplicate
// results without comparing whole structures.
package key

import (
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"

	"github.com/Myst4ke/cfra-project/types"
)

// Digest returns a canonical 64-bit digest of an assignment.
//
// The digest is order-independent over leaves: two assignments with the same
// center choice, group size and leaf colouring always hash identically, no
// matter the map iteration order.
func Digest(a types.Assignment) uint64 {
	leaves := make([]string, 0, len(a.Leaves))
	for leaf := range a.Leaves {
		leaves = append(leaves, leaf)
	}
	slices.Sort(leaves)

	// Field and record separators keep ("ab","c") distinct from ("a","bc").
	buf := make([]byte, 0, 64)
	buf = append(buf, a.Center...)
	buf = append(buf, 0x1f)
	buf = append(buf, a.CenterActivity...)
	buf = append(buf, 0x1f)
	buf = strconv.AppendInt(buf, int64(a.GroupSize), 10)
	for _, leaf := range leaves {
		buf = append(buf, 0x1e)
		buf = append(buf, leaf...)
		buf = append(buf, 0x1f)
		buf = append(buf, a.Leaves[leaf]...)
	}

	return xxh3.Hash(buf)
}
