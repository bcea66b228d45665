package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/vollan/takt/internal/aggregate"
	"github.com/vollan/takt/internal/clock"
	"github.com/vollan/takt/internal/duration"
	"github.com/vollan/takt/internal/store"
)

var (
	headerColor = color.New(color.Bold, color.Underline)
	faintColor  = color.New(color.Faint)
	totalColor  = color.New(color.Bold)
)

// renderEntryTable writes a block's entries as an aligned table with a
// per-row duration column.
func renderEntryTable(entries []store.TimeEntry, quantize bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "DATE", "START", "END", "PROJECT", "ACTIVITY", "DURATION")

	for i, e := range entries {
		hours := clock.FormatDuration(duration.Elapsed(e.Start, e.End, quantize))
		tbl.AddRow(fmt.Sprintf("%d", i+1), e.Date, e.Start, e.End, e.Project, e.Activity, hours)
	}

	_, _ = fmt.Fprintln(deps.Stdout, tbl)
}

// renderBreakdown writes a titled per-key duration list. Breakdowns
// with fewer than two keys carry no information beyond the total and
// are skipped; the sums themselves are still computed by the caller.
func renderBreakdown(title string, groups []aggregate.Group) {
	if len(groups) < 2 {
		return
	}

	_, _ = headerColor.Fprintln(deps.Stdout, title)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range groups {
		tbl.AddRow(g.Name, clock.FormatDuration(g.Minutes))
	}
	_, _ = fmt.Fprintln(deps.Stdout, tbl)
}

// renderTotal writes the block's grand total.
func renderTotal(minutes int) {
	_, _ = totalColor.Fprintf(deps.Stdout, "Total: %s\n", clock.FormatDuration(minutes))
}
