package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/export"
)

// dateCmd represents the date command
var dateCmd = &cobra.Command{
	Use:   "date <tracker-id> <YYYY-MM-DD>",
	Short: "Set a block's reference date",
	Long: `Set the block's reference date. New rows default to this date, and
every existing row in the block is rewritten to it as well - changing
the reference date moves the whole block to the new day.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setReferenceDate(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func setReferenceDate(id, date string) {
	if _, err := export.ParseDate(date); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", date)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD, e.g. 2024-03-01")
		deps.Exit(1)
		return
	}

	s, persister, ok := openStore()
	if !ok {
		return
	}
	if !requireBlock(s, id) {
		return
	}

	s.SetReferenceDate(id, date)
	if !saveStore(persister, s) {
		return
	}

	count := len(s.Entries(id))
	_, _ = fmt.Fprintf(deps.Stdout, "Reference date for %s set to %s (%d %s backfilled)\n",
		id, date, count, pluralize("row", count))
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
