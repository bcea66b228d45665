package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/clock"
	"github.com/vollan/takt/internal/duration"
	"github.com/vollan/takt/internal/export"
	"github.com/vollan/takt/internal/store"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <tracker-id>",
	Short: "Append an entry to a block",
	Long: `Append a time entry to the given tracker block. The block is created
on first use. Without --date the entry takes the block's reference date.

Start and end are HH:MM wall-clock times and may be left empty for rows
still in progress; an end before its start means the interval crossed
midnight. New project names are added to the global project catalog.

Examples:
  takt add a1b2c3d4 --start 09:00 --end 10:30 --project acme --activity review
  takt add a1b2c3d4 --date 2024-03-01 --start 22:00 --end 02:00`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		project, _ := cmd.Flags().GetString("project")
		activity, _ := cmd.Flags().GetString("activity")
		addEntry(args[0], date, start, end, project, activity)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, default: block's reference date)")
	addCmd.Flags().String("start", "", "Start time (HH:MM)")
	addCmd.Flags().String("end", "", "End time (HH:MM)")
	addCmd.Flags().String("project", "", "Project name")
	addCmd.Flags().String("activity", "", "Activity description")
}

func addEntry(id, date, start, end, project, activity string) {
	if date != "" {
		if _, err := export.ParseDate(date); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", date)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD, e.g. 2024-03-01")
			deps.Exit(1)
			return
		}
	}

	s, persister, ok := openStore()
	if !ok {
		return
	}

	if date == "" {
		date = s.ReferenceDate(id)
	}

	s.Append(id, store.TimeEntry{
		Date:     date,
		Start:    start,
		End:      end,
		Project:  project,
		Activity: activity,
	})

	if !saveStore(persister, s) {
		return
	}

	quantize := s.Data().Settings.RoundToQuarterHour
	hours := clock.FormatDuration(duration.Elapsed(start, end, quantize))
	_, _ = fmt.Fprintf(deps.Stdout, "Added row %d to %s (%s)\n", len(s.Entries(id)), id, hours)
}
