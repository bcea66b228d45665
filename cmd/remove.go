package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/sortorder"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <tracker-id> <row>",
	Short: "Remove an entry by its row position",
	Long: `Remove the entry at the given row position (1-based, as shown by
'takt show'). Removal is structural: when a block contains identical
rows, exactly the addressed row is removed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		removeEntry(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeEntry(id, rowArg string) {
	row, err := strconv.Atoi(rowArg)
	if err != nil || row < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid row '%s'. Row must be a positive number\n", rowArg)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: List rows with 'takt show %s'\n", id)
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

	// 'takt show' numbers rows in the block's display order; map the
	// addressed row back to its storage position before removing.
	index := row - 1
	perm := sortorder.Permutation(s.Entries(id), s.SortMode(id))
	if index < len(perm) {
		index = perm[index]
	}

	removed, err := s.RemoveAt(id, index)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Row %d is out of range\n", row)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: List rows with 'takt show %s'\n", id)
		deps.Exit(1)
		return
	}

	if !saveStore(persister, s) {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed row %d from %s (%s %s-%s)\n", row, id, removed.Date, removed.Start, removed.End)
}
