// Package sortorder orders a block's entries for display according to
// its persisted sort preference.
package sortorder

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vollan/takt/internal/clock"
	"github.com/vollan/takt/internal/store"
)

// projectCollator compares project names locale-aware and
// case-sensitively, matching how the display surface collates text.
var projectCollator = collate.New(language.Und)

// Permutation returns the display order as insertion-order positions:
// element i names the entry shown at row i. Deletion surfaces resolve a
// displayed row through this mapping before mutating the stored
// sequence, so the row removed is always the row the user saw. The
// input is never mutated and the sort is stable: rows with equal keys
// keep their insertion order.
func Permutation(entries []store.TimeEntry, mode store.SortMode) []int {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}

	switch mode {
	case store.SortByStart:
		sort.SliceStable(idx, func(i, j int) bool {
			return clock.ParseClockTime(entries[idx[i]].Start) < clock.ParseClockTime(entries[idx[j]].Start)
		})
	case store.SortByProject:
		sort.SliceStable(idx, func(i, j int) bool {
			return projectCollator.CompareString(entries[idx[i]].Project, entries[idx[j]].Project) < 0
		})
	}

	return idx
}

// Sort returns a new slice ordered by the given mode.
func Sort(entries []store.TimeEntry, mode store.SortMode) []store.TimeEntry {
	out := make([]store.TimeEntry, 0, len(entries))
	for _, i := range Permutation(entries, mode) {
		out = append(out, entries[i])
	}
	return out
}
