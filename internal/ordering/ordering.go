// Package ordering sorts matched paths for presentation and processing.
//
// Ascending and descending orders compare path strings byte-wise, so the
// result does not depend on the locale. Random order is a uniform
// Fisher-Yates shuffle with no reproducibility guarantee unless the caller
// supplies a seeded generator.
package ordering

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// Sort returns a new slice holding paths in the requested order.
// The input slice is never modified. A nil rng uses the global generator.
func Sort(paths []string, order extscan.SortOrder, rng *rand.Rand) []string {
	return sortBy(paths, order, rng, func(p string) string { return p })
}

// SortEntries orders entries by Path the same way Sort orders strings.
func SortEntries(entries []extscan.FileEntry, order extscan.SortOrder, rng *rand.Rand) []extscan.FileEntry {
	return sortBy(entries, order, rng, func(e extscan.FileEntry) string { return e.Path })
}

func sortBy[T any](items []T, order extscan.SortOrder, rng *rand.Rand, key func(T) string) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}

	switch order {
	case extscan.SortDescending:
		slices.SortStableFunc(out, func(a, b T) int { return strings.Compare(key(b), key(a)) })
	case extscan.SortRandom:
		swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
		if rng != nil {
			rng.Shuffle(len(out), swap)
		} else {
			rand.Shuffle(len(out), swap)
		}
	default:
		slices.SortStableFunc(out, func(a, b T) int { return strings.Compare(key(a), key(b)) })
	}
	return out
}
