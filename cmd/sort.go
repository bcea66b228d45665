package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/store"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <tracker-id> <none|start|project>",
	Short: "Set a block's sort order",
	Long: `Set the persisted sort preference for one block.

  none     insertion order (default)
  start    ascending by start time; unparseable times sort first
  project  ascending by project name

Rows with equal keys keep their relative order.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setSortMode(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func setSortMode(id, modeArg string) {
	mode, err := store.ParseSortMode(modeArg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
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

	s.SetSort(id, mode)
	if !saveStore(persister, s) {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Sort order for %s set to %s\n", id, mode)
}
