package cmd

import (
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			env := setupCmdTest(t)

			generateCompletion(completionCmd, shell)

			if env.exited {
				t.Errorf("Expected no exit, got code %d", env.exitCode)
			}
			if !strings.Contains(env.stdout.String(), "takt") {
				t.Errorf("Expected completion script mentioning takt, got %d bytes", env.stdout.Len())
			}
		})
	}
}
