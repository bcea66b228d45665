package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings [round|cleanup] [on|off]",
	Short: "Show or change global settings",
	Long: `Show or change the global tracker settings.

  takt settings               Show current settings
  takt settings round on      Round every duration to the nearest quarter hour
  takt settings round off     Use raw durations
  takt settings cleanup on    Allow 'takt cleanup' to reap orphaned blocks
  takt settings cleanup off   Disable orphan cleanup

Rounding applies retroactively to all blocks: totals, breakdowns, and
exports are all derived from the same toggle.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSettings(args)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(args []string) {
	s, persister, ok := openStore()
	if !ok {
		return
	}

	if len(args) == 0 {
		settings := s.Data().Settings
		_, _ = fmt.Fprintf(deps.Stdout, "round (quarter-hour rounding): %s\n", onOff(settings.RoundToQuarterHour))
		_, _ = fmt.Fprintf(deps.Stdout, "cleanup (orphan reaping):      %s\n", onOff(settings.AutoCleanup))
		_, _ = fmt.Fprintf(deps.Stdout, "projects in catalog:           %d\n", len(settings.Projects))
		return
	}

	if len(args) != 2 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Expected a setting and a value")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: takt settings <round|cleanup> <on|off>")
		deps.Exit(1)
		return
	}

	var value bool
	switch args[1] {
	case "on":
		value = true
	case "off":
		value = false
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid value '%s' (expected on or off)\n", args[1])
		deps.Exit(1)
		return
	}

	switch args[0] {
	case "round":
		s.Data().Settings.RoundToQuarterHour = value
	case "cleanup":
		s.Data().Settings.AutoCleanup = value
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown setting '%s' (expected round or cleanup)\n", args[0])
		deps.Exit(1)
		return
	}

	if !saveStore(persister, s) {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s set to %s\n", args[0], args[1])
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
