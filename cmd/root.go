package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "takt",
	Short: "Track time in blocks embedded in your markdown notes",
	Long: `takt manages time-tracker blocks embedded in markdown documents.

A tracker block is a fenced code region tagged 'time-tracker' carrying a
'<!-- tracker-id: ... -->' marker line. Entries, sort preferences, and
per-block reference dates live in a single storage blob keyed by those ids.

Usage:
  takt stamp <files...>                 Insert missing tracker-id markers
  takt show <id>                        Show a block's entries and totals
  takt add <id> --start 09:00 --end 10:30 --project acme --activity review
  takt remove <id> <row>                Remove a row by its position
  takt sort <id> <none|start|project>   Set the block's sort order
  takt date <id> <YYYY-MM-DD>           Set reference date (backfills rows)
  takt export --from <date> --to <date> Export entries to CSV
  takt cleanup <files...>               Remove blocks orphaned from documents
  takt tui <id>                         Edit a block interactively

Times are HH:MM wall-clock values; an end before its start means the
interval crossed midnight.`,
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"takt version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
