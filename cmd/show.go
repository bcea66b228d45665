package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/aggregate"
	"github.com/vollan/takt/internal/sortorder"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <tracker-id>",
	Short: "Show a block's entries, total, and breakdowns",
	Long: `Show the entries of one tracker block in its configured sort order,
with per-row durations, the block total, and per-project/per-activity
sums. Breakdowns appear only when a block spans more than one project
or activity.

Durations honor the global quarter-hour rounding setting
(see 'takt settings').`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showBlock(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showBlock(id string) {
	s, _, ok := openStore()
	if !ok {
		return
	}
	if !requireBlock(s, id) {
		return
	}

	quantize := s.Data().Settings.RoundToQuarterHour
	entries := sortorder.Sort(s.Entries(id), s.SortMode(id))

	_, _ = headerColor.Fprintf(deps.Stdout, "Tracker %s", id)
	_, _ = faintColor.Fprintf(deps.Stdout, "  (reference date %s, sort %s)\n", s.ReferenceDate(id), s.SortMode(id))

	if len(entries) == 0 {
		_, _ = faintColor.Fprintln(deps.Stdout, "no entries")
		return
	}

	renderEntryTable(entries, quantize)
	renderTotal(aggregate.Total(entries, quantize))
	renderBreakdown("By project", aggregate.ByProject(entries, quantize))
	renderBreakdown("By activity", aggregate.ByActivity(entries, quantize))
}
