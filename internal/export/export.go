// Package export filters entries by date range and serializes them to
// the flat CSV record format.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/vollan/takt/internal/clock"
	"github.com/vollan/takt/internal/duration"
	"github.com/vollan/takt/internal/store"
)

// DateLayout is the calendar-date format used throughout the data set.
const DateLayout = "2006-01-02"

// csvHeader is the fixed header row of an export.
const csvHeader = "date,start,end,project,activity,hours"

// ParseDate parses a plain YYYY-MM-DD calendar date. Dates are local
// wall-clock values; no timezone offset is ever applied.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Filter returns the entries whose date falls inside [from, to]
// inclusive, optionally restricted to an exact project match. Input
// order is preserved; entries with unparseable dates are excluded.
func Filter(entries []store.TimeEntry, from, to time.Time, project string) []store.TimeEntry {
	var out []store.TimeEntry
	for _, e := range entries {
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		if project != "" && e.Project != project {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ToCSV renders entries as CSV text, one row per entry in the given
// order. Field values are emitted verbatim without escaping; a project
// or activity containing a comma corrupts its record. That limitation
// is part of the format.
func ToCSV(entries []store.TimeEntry, quantize bool) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, e := range entries {
		hours := clock.FormatDuration(duration.Elapsed(e.Start, e.End, quantize))
		b.WriteString(strings.Join([]string{e.Date, e.Start, e.End, e.Project, e.Activity, hours}, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// Filename returns the conventional export file name for a date range.
func Filename(from, to time.Time) string {
	return fmt.Sprintf("time-export-%s-bis-%s.csv", from.Format(DateLayout), to.Format(DateLayout))
}
