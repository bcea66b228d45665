package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vollan/takt/internal/export"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export --from <date> --to <date>",
	Short: "Export entries across all blocks to CSV",
	Long: `Export entries from every tracker block whose date falls inside the
inclusive range, optionally restricted to one project.

Output columns: date,start,end,project,activity,hours. The hours column
honors the global quarter-hour rounding setting. Field values are written
as-is; a project or activity containing a comma will corrupt its record.

By default the CSV is written to the configured export directory as
time-export-<from>-bis-<to>.csv.

Examples:
  takt export --from 2024-01-01 --to 2024-01-31
  takt export --from 2024-01-01 --to 2024-01-31 --project acme
  takt export --from 2024-01-01 --to 2024-01-31 --stdout`,
	Run: func(cmd *cobra.Command, args []string) {
		fromArg, _ := cmd.Flags().GetString("from")
		toArg, _ := cmd.Flags().GetString("to")
		project, _ := cmd.Flags().GetString("project")
		out, _ := cmd.Flags().GetString("out")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		exportEntries(fromArg, toArg, project, out, toStdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("from", "", "Range start date (YYYY-MM-DD)")
	exportCmd.Flags().String("to", "", "Range end date (YYYY-MM-DD)")
	exportCmd.Flags().String("project", "", "Only export entries of this project")
	exportCmd.Flags().String("out", "", "Output file path (default: export directory + conventional name)")
	exportCmd.Flags().Bool("stdout", false, "Write CSV to stdout instead of a file")
	_ = exportCmd.MarkFlagRequired("from")
	_ = exportCmd.MarkFlagRequired("to")
}

func exportEntries(fromArg, toArg, project, out string, toStdout bool) {
	from, err := export.ParseDate(fromArg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid start date '%s'\n", fromArg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD, e.g. 2024-01-01")
		deps.Exit(1)
		return
	}
	to, err := export.ParseDate(toArg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid end date '%s'\n", toArg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DD, e.g. 2024-01-31")
		deps.Exit(1)
		return
	}
	if to.Before(from) {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: End date is before start date")
		deps.Exit(1)
		return
	}

	s, _, ok := openStore()
	if !ok {
		return
	}

	filtered := export.Filter(s.AllEntries(), from, to, project)
	csv := export.ToCSV(filtered, s.Data().Settings.RoundToQuarterHour)

	if toStdout {
		_, _ = fmt.Fprint(deps.Stdout, csv)
		return
	}

	path := out
	if path == "" {
		cfg, ok := loadCLIConfig()
		if !ok {
			return
		}
		exportDir, err := cfg.ResolveExportDir()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine export directory")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
		path = filepath.Join(exportDir, export.Filename(from, to))
	}

	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write export file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", filepath.Dir(path))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", len(filtered), pluralize("record", len(filtered)), path)
}
