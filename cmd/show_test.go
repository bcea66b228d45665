package cmd

import (
	"strings"
	"testing"

	"github.com/vollan/takt/internal/store"
)

func TestShowBlock_UnknownID(t *testing.T) {
	env := setupCmdTest(t)

	showBlock("missing1")

	if !env.exited || env.exitCode != 1 {
		t.Errorf("Expected exit(1), got exited=%v code=%d", env.exited, env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Unknown tracker id 'missing1'") {
		t.Errorf("Expected unknown id error, got: %s", env.stderr.String())
	}
	if loadStore(t, env).Has("missing1") {
		t.Error("show must not create the block as a side effect")
	}
}

func TestShowBlock_EmptyBlock(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Block("empty123")
	})

	showBlock("empty123")

	if !strings.Contains(env.stdout.String(), "no entries") {
		t.Errorf("Expected 'no entries', got: %s", env.stdout.String())
	}
}

func TestShowBlock_EntriesAndBreakdowns(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "09:00", End: "10:30", Project: "acme", Activity: "review"})
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "13:00", End: "14:30", Project: "beta", Activity: "dev"})
	})

	showBlock("abc12345")

	output := env.stdout.String()
	if !strings.Contains(output, "Tracker abc12345") {
		t.Errorf("Expected tracker header, got: %s", output)
	}
	if !strings.Contains(output, "Total: 3:00") {
		t.Errorf("Expected 'Total: 3:00', got: %s", output)
	}
	if !strings.Contains(output, "By project") {
		t.Errorf("Expected project breakdown for a two-project block, got: %s", output)
	}
	if !strings.Contains(output, "By activity") {
		t.Errorf("Expected activity breakdown, got: %s", output)
	}
	if !strings.Contains(output, "acme") || !strings.Contains(output, "beta") {
		t.Errorf("Expected both projects listed, got: %s", output)
	}
}

func TestShowBlock_SingleProjectHidesBreakdown(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "09:00", End: "10:00", Project: "acme", Activity: "dev"})
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "10:00", End: "11:00", Project: "acme", Activity: "dev"})
	})

	showBlock("abc12345")

	output := env.stdout.String()
	if strings.Contains(output, "By project") {
		t.Errorf("Expected single-project breakdown to be hidden, got: %s", output)
	}
	if strings.Contains(output, "By activity") {
		t.Errorf("Expected single-activity breakdown to be hidden, got: %s", output)
	}
	if !strings.Contains(output, "Total: 2:00") {
		t.Errorf("Expected total to still be shown, got: %s", output)
	}
}

func TestShowBlock_HonorsSortOrder(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "13:00", End: "14:00", Activity: "late"})
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "08:00", End: "09:00", Activity: "early"})
		s.SetSort("abc12345", store.SortByStart)
	})

	showBlock("abc12345")

	output := env.stdout.String()
	early := strings.Index(output, "08:00")
	late := strings.Index(output, "13:00")
	if early == -1 || late == -1 {
		t.Fatalf("Expected both rows in output, got: %s", output)
	}
	if early > late {
		t.Errorf("Expected rows sorted by start time, got: %s", output)
	}
}

func TestShowBlock_QuantizedDurations(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Append("abc12345", store.TimeEntry{Date: "2024-01-05", Start: "09:00", End: "09:08", Activity: "standup"})
		s.Data().Settings.RoundToQuarterHour = true
	})

	showBlock("abc12345")

	if !strings.Contains(env.stdout.String(), "Total: 0:15") {
		t.Errorf("Expected quantized total 0:15, got: %s", env.stdout.String())
	}
}
