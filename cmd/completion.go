package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for takt.

Usage:
  takt completion bash       Generate bash completion script
  takt completion zsh        Generate zsh completion script
  takt completion fish       Generate fish completion script
  takt completion powershell Generate powershell completion script

Bash:
  # Load completion temporarily (current session only):
  source <(takt completion bash)

  # Install permanently (Linux):
  takt completion bash > ~/.local/share/bash-completion/completions/takt

Zsh:
  mkdir -p ~/.zsh/completion
  takt completion zsh > ~/.zsh/completion/_takt

Fish:
  takt completion fish > ~/.config/fish/completions/takt.fish`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func generateCompletion(cmd *cobra.Command, shell string) {
	var err error
	switch shell {
	case "bash":
		err = cmd.Root().GenBashCompletion(deps.Stdout)
	case "zsh":
		err = cmd.Root().GenZshCompletion(deps.Stdout)
	case "fish":
		err = cmd.Root().GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = cmd.Root().GenPowerShellCompletionWithDesc(deps.Stdout)
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}
