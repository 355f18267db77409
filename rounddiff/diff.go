package rounddiff

import (
	"github.com/dasnellings/roundDiff/clusterid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Count returns the number of filenames per cluster identifier.
func Count(names []string) map[string]int {
	counts := make(map[string]int)
	for _, n := range names {
		counts[clusterid.LastNum(n)]++
	}
	return counts
}

// Index groups filenames by cluster identifier, keeping listing order within each group.
func Index(names []string) map[string][]string {
	idx := make(map[string][]string)
	var id string
	for _, n := range names {
		id = clusterid.LastNum(n)
		idx[id] = append(idx[id], n)
	}
	return idx
}

// Missing returns the round1 filenames that have no counterpart in round2 when
// files are matched by cluster identifier. Identifiers are treated as a multiset:
// if round1 has 3 files with id 12 and round2 has 1, the first 2 round1 files
// with id 12 are reported. The result is deduplicated and sorted with clusterid.Compare.
func Missing(round1, round2 []string) []string {
	c1 := Count(round1)
	c2 := Count(round2)
	idx := Index(round1)

	// sorted so the pre-dedup collection does not depend on map iteration order
	ids := maps.Keys(c1)
	slices.Sort(ids)

	var missing []string
	var deficit int
	for _, id := range ids {
		deficit = c1[id] - c2[id]
		if deficit <= 0 {
			continue
		}
		missing = append(missing, idx[id][:deficit]...)
	}

	slices.SortFunc(missing, clusterid.Compare)
	return slices.Compact(missing)
}
