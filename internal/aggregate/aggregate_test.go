package aggregate

import (
	"testing"

	"github.com/vollan/takt/internal/store"
)

func entry(start, end, project, activity string) store.TimeEntry {
	return store.TimeEntry{Date: "2024-01-01", Start: start, End: end, Project: project, Activity: activity}
}

func TestTotal(t *testing.T) {
	entries := []store.TimeEntry{
		entry("09:00", "10:30", "A", "x"), // 90
		entry("11:00", "11:45", "B", "y"), // 45
	}

	if got := Total(entries, false); got != 135 {
		t.Errorf("Total = %d, expected 135", got)
	}
}

func TestTotalEmpty(t *testing.T) {
	if got := Total(nil, false); got != 0 {
		t.Errorf("Total(nil) = %d, expected 0", got)
	}
}

func TestTotalWraparoundScenario(t *testing.T) {
	entries := []store.TimeEntry{
		entry("09:00", "10:30", "A", "x"),
		entry("10:30", "09:00", "A", "y"),
	}

	if got := Total(entries, false); got != 1440 {
		t.Errorf("Total = %d, expected 1440 (24:00)", got)
	}
}

func TestTotalQuantizedPerEntry(t *testing.T) {
	// 09:00-09:07 rounds to 0 and 10:00-10:08 rounds to 15; quantization
	// happens per entry, not on the raw sum (which would round to 15).
	entries := []store.TimeEntry{
		entry("09:00", "09:07", "A", "x"),
		entry("10:00", "10:08", "A", "y"),
	}

	if got := Total(entries, true); got != 15 {
		t.Errorf("Total quantized = %d, expected 15", got)
	}
}

func TestByProject(t *testing.T) {
	entries := []store.TimeEntry{
		entry("09:00", "10:00", "beta", "x"),  // 60
		entry("10:00", "10:30", "alpha", "y"), // 30
		entry("11:00", "11:30", "beta", "z"),  // 30
	}

	got := ByProject(entries, false)
	if len(got) != 2 {
		t.Fatalf("ByProject returned %d groups, expected 2", len(got))
	}
	// First-appearance order, not alphabetical.
	if got[0].Name != "beta" || got[0].Minutes != 90 {
		t.Errorf("group 0 = %+v, expected {beta 90}", got[0])
	}
	if got[1].Name != "alpha" || got[1].Minutes != 30 {
		t.Errorf("group 1 = %+v, expected {alpha 30}", got[1])
	}
}

func TestByProjectExcludesBlankProjects(t *testing.T) {
	entries := []store.TimeEntry{
		entry("09:00", "10:00", "", "x"),
		entry("10:00", "11:00", "   ", "y"),
		entry("11:00", "12:00", "real", "z"),
	}

	got := ByProject(entries, false)
	if len(got) != 1 || got[0].Name != "real" {
		t.Errorf("ByProject = %v, expected only [real]", got)
	}
}

func TestByProjectSingleKeyStillComputed(t *testing.T) {
	// Hiding a one-project breakdown is display policy; the sum itself
	// must exist for single-project input.
	entries := []store.TimeEntry{entry("09:00", "10:00", "solo", "x")}

	got := ByProject(entries, false)
	if len(got) != 1 || got[0].Minutes != 60 {
		t.Errorf("ByProject = %v, expected [{solo 60}]", got)
	}
}

func TestByActivityTrimsKeys(t *testing.T) {
	entries := []store.TimeEntry{
		entry("09:00", "10:00", "A", "  review "),
		entry("10:00", "11:00", "A", "review"),
		entry("11:00", "11:30", "A", ""),
	}

	got := ByActivity(entries, false)
	if len(got) != 1 {
		t.Fatalf("ByActivity returned %d groups, expected 1", len(got))
	}
	if got[0].Name != "review" || got[0].Minutes != 120 {
		t.Errorf("group = %+v, expected {review 120}", got[0])
	}
}

func TestBreakdownSumsMatchTotal(t *testing.T) {
	// With every entry carrying a project and an activity, both
	// breakdowns partition the grand total.
	entries := []store.TimeEntry{
		entry("09:00", "10:30", "A", "code"),
		entry("10:30", "11:00", "B", "review"),
		entry("13:00", "14:15", "A", "review"),
	}

	for _, quantize := range []bool{false, true} {
		total := Total(entries, quantize)

		projectSum := 0
		for _, g := range ByProject(entries, quantize) {
			projectSum += g.Minutes
		}
		if projectSum != total {
			t.Errorf("quantize=%v: project sums = %d, expected total %d", quantize, projectSum, total)
		}

		activitySum := 0
		for _, g := range ByActivity(entries, quantize) {
			activitySum += g.Minutes
		}
		if activitySum != total {
			t.Errorf("quantize=%v: activity sums = %d, expected total %d", quantize, activitySum, total)
		}
	}
}
