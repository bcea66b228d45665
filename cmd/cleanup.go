package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/identity"
)

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup <files...>",
	Short: "Remove blocks orphaned from their documents",
	Long: `Remove stored blocks whose tracker id no longer appears in any of the
given documents. Pass every document that may contain tracker blocks: an
id missing from the scanned set is treated as orphaned and its entries
are deleted.

Requires the cleanup setting to be enabled ('takt settings cleanup on').`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cleanupOrphans(args)
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func cleanupOrphans(paths []string) {
	s, persister, ok := openStore()
	if !ok {
		return
	}

	if !s.Data().Settings.AutoCleanup {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Orphan cleanup is disabled")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Enable it with 'takt settings cleanup on'")
		deps.Exit(1)
		return
	}

	referenced := make(map[string]bool)
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			// An unreadable document must not orphan its blocks.
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read '%s'\n", path)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Cleanup aborted; no blocks were removed")
			deps.Exit(1)
			return
		}
		for _, id := range identity.ExtractAllIDs(string(raw)) {
			referenced[id] = true
		}
	}

	var orphans []string
	for _, id := range s.TrackerIDs() {
		if !referenced[id] {
			orphans = append(orphans, id)
		}
	}

	if len(orphans) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No orphaned blocks found")
		return
	}

	for _, id := range orphans {
		s.Remove(id)
	}

	if !saveStore(persister, s) {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed %d orphaned %s\n", len(orphans), pluralize("block", len(orphans)))
}
