package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/vollan/takt/internal/store"
)

func TestAddEntry_InvalidDate(t *testing.T) {
	env := setupCmdTest(t)

	addEntry("blk00001", "05.03.2024", "09:00", "10:00", "", "")

	if !env.exited || env.exitCode != 1 {
		t.Errorf("Expected exit(1), got exited=%v code=%d", env.exited, env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Invalid date '05.03.2024'") {
		t.Errorf("Expected invalid date error, got: %s", env.stderr.String())
	}
}

func TestAddEntry_AppendsAndPersists(t *testing.T) {
	env := setupCmdTest(t)

	addEntry("blk00001", "2024-03-01", "09:00", "10:30", "acme", "review")

	if !strings.Contains(env.stdout.String(), "Added row 1 to blk00001 (1:30)") {
		t.Errorf("Expected add confirmation, got: %s", env.stdout.String())
	}

	s := loadStore(t, env)
	entries := s.Entries("blk00001")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 persisted entry, got %d", len(entries))
	}
	want := store.TimeEntry{Date: "2024-03-01", Start: "09:00", End: "10:30", Project: "acme", Activity: "review"}
	if entries[0] != want {
		t.Errorf("Persisted entry = %+v, expected %+v", entries[0], want)
	}
	if projects := s.Data().Settings.Projects; len(projects) != 1 || projects[0] != "acme" {
		t.Errorf("Expected project catalog [acme], got %v", projects)
	}
}

func TestAddEntry_DefaultsToReferenceDate(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Block("blk00001")
		s.SetReferenceDate("blk00001", "2024-02-01")
	})

	addEntry("blk00001", "", "22:00", "02:00", "", "night shift")

	entries := loadStore(t, env).Entries("blk00001")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 persisted entry, got %d", len(entries))
	}
	if entries[0].Date != "2024-02-01" {
		t.Errorf("Expected reference date 2024-02-01, got %s", entries[0].Date)
	}
	// An end before its start crossed midnight.
	if !strings.Contains(env.stdout.String(), "(4:00)") {
		t.Errorf("Expected wrapped duration 4:00, got: %s", env.stdout.String())
	}
}

func TestAddEntry_CreatesBlockWithTodayAsReference(t *testing.T) {
	env := setupCmdTest(t)

	addEntry("fresh001", "", "09:00", "10:00", "", "")

	entries := loadStore(t, env).Entries("fresh001")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 persisted entry, got %d", len(entries))
	}
	today := time.Now().Format("2006-01-02")
	if entries[0].Date != today {
		t.Errorf("Expected today's date %s on a fresh block, got %s", today, entries[0].Date)
	}
}

func TestAddEntry_QuantizedConfirmation(t *testing.T) {
	env := setupCmdTest(t)
	seedStore(t, env, func(s *store.Store) {
		s.Data().Settings.RoundToQuarterHour = true
	})

	addEntry("blk00001", "2024-03-01", "09:00", "09:08", "", "standup")

	if !strings.Contains(env.stdout.String(), "(0:15)") {
		t.Errorf("Expected quantized duration 0:15, got: %s", env.stdout.String())
	}
}
