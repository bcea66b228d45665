package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui <tracker-id>",
	Short: "Edit a block interactively",
	Long: `Open an interactive editor for one tracker block.

Keyboard shortcuts:
  j/k or arrows  Move between rows
  a              Add a row (tab between fields, enter to save, esc to cancel)
  d              Delete the selected row
  s              Cycle the block's sort order
  r              Toggle quarter-hour rounding (global)
  q              Quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(args[0])
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(id string) {
	s, persister, ok := openStore()
	if !ok {
		return
	}

	if err := tui.Run(s, persister, id); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: TUI failed: %v\n", err)
		deps.Exit(1)
	}
}
