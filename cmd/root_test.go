package cmd

import (
	"strings"
	"testing"
)

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.2.3", "abc1234", "2024-01-01")

	if rootCmd.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", rootCmd.Version)
	}
}

func TestRootCommand_HasAllSubcommands(t *testing.T) {
	expected := []string{
		"stamp", "show", "add", "remove", "sort", "date",
		"export", "settings", "projects", "cleanup", "tui", "completion",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestRootCommand_Usage(t *testing.T) {
	if rootCmd.Use != "takt" {
		t.Errorf("Expected root command 'takt', got %s", rootCmd.Use)
	}
	if !strings.Contains(rootCmd.Long, "tracker-id") {
		t.Error("Expected long help to describe tracker-id markers")
	}
}
