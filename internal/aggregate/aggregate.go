// Package aggregate sums entry durations per block, per project, and
// per activity. Quantization is taken from the caller's flag and
// applied to every per-entry duration, never to the sums afterwards, so
// raw and quantized values are never mixed within one computation.
package aggregate

import (
	"strings"

	"github.com/vollan/takt/internal/duration"
	"github.com/vollan/takt/internal/store"
)

// Group is one key's duration sum within a breakdown.
type Group struct {
	Name    string
	Minutes int
}

// Total returns the block's grand total in minutes.
func Total(entries []store.TimeEntry, quantize bool) int {
	total := 0
	for _, e := range entries {
		total += duration.Elapsed(e.Start, e.End, quantize)
	}
	return total
}

// ByProject sums durations per project, keyed in first-appearance
// order. Entries with an empty or whitespace-only project are excluded.
// Whether a single-key breakdown is worth showing is the display
// surface's call; the sums are computed regardless.
func ByProject(entries []store.TimeEntry, quantize bool) []Group {
	return groupBy(entries, quantize, func(e store.TimeEntry) string {
		if strings.TrimSpace(e.Project) == "" {
			return ""
		}
		return e.Project
	})
}

// ByActivity sums durations per trimmed activity, keyed in
// first-appearance order. Blank activities are excluded.
func ByActivity(entries []store.TimeEntry, quantize bool) []Group {
	return groupBy(entries, quantize, func(e store.TimeEntry) string {
		return strings.TrimSpace(e.Activity)
	})
}

// groupBy accumulates per-key sums preserving first-appearance order.
// An empty key excludes the entry.
func groupBy(entries []store.TimeEntry, quantize bool, key func(store.TimeEntry) string) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, e := range entries {
		k := key(e)
		if k == "" {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Name: k})
		}
		groups[i].Minutes += duration.Elapsed(e.Start, e.End, quantize)
	}

	return groups
}
