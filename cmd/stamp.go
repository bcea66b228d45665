package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/identity"
)

// stampGuard tracks files already processed during this invocation.
// One CLI run is one load cycle; --force plays the role of the host's
// change notification and re-arms a file.
var stampGuard = identity.NewGuard()

// stampCmd represents the stamp command
var stampCmd = &cobra.Command{
	Use:   "stamp <files...>",
	Short: "Insert missing tracker-id markers into documents",
	Long: `Scan each document for fenced tracker regions and insert a fresh
'<!-- tracker-id: ... -->' marker line into every region that lacks one.

Regions that already carry a marker are left untouched, so running stamp
repeatedly never changes a document twice. Each file is processed at most
once per invocation; --force re-arms files that were already processed.

Examples:
  takt stamp notes/today.md
  takt stamp notes/*.md
  takt stamp --force notes/today.md`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		stampFiles(args, force)
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
	stampCmd.Flags().Bool("force", false, "Re-stamp files already processed this invocation")
}

func stampFiles(paths []string, force bool) {
	cfg, ok := loadCLIConfig()
	if !ok {
		return
	}

	failed := false
	for _, path := range paths {
		if force {
			stampGuard.Invalidate(path)
		}

		changed, err := stampGuard.StampFile(path, cfg.FenceLabel)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to stamp '%s'\n", path)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			failed = true
			continue
		}

		if changed {
			_, _ = fmt.Fprintf(deps.Stdout, "Stamped: %s\n", path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "Unchanged: %s\n", path)
		}
	}

	if failed {
		deps.Exit(1)
	}
}
