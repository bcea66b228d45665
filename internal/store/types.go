// Package store owns the persisted tracker data: every block's entry
// sequence, per-block sort preference and reference date, and the
// global settings. The whole data set is one JSON blob, read in full at
// startup and written in full after every mutation.
package store

import "fmt"

// TimeEntry is a single tracked interval. Entries carry no identity of
// their own; they are addressed by their position within a block.
type TimeEntry struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Project  string `json:"project"`
	Activity string `json:"activity"`
}

// SortMode is a block's persisted sort preference.
type SortMode string

const (
	SortNone      SortMode = "none"
	SortByStart   SortMode = "start"
	SortByProject SortMode = "project"
)

// ParseSortMode validates a user-supplied sort mode string.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortNone, SortByStart, SortByProject:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("unknown sort mode %q (expected none, start, or project)", s)
}

// GlobalSettings applies across all blocks. RoundToQuarterHour affects
// every derived duration retroactively, so quantized values are never
// cached. ProjectsSeeded guards the one-time catalog migration.
type GlobalSettings struct {
	AutoCleanup        bool     `json:"autoCleanup"`
	RoundToQuarterHour bool     `json:"roundTimesToQuarterHour"`
	Projects           []string `json:"projects"`
	ProjectsSeeded     bool     `json:"projectsSeeded"`
}

// Storage is the persisted blob. A tracker id missing from any map is
// equivalent to its default: empty entries, sort "none", no date.
type Storage struct {
	Instances    map[string][]TimeEntry `json:"instances"`
	SortSettings map[string]SortMode    `json:"sortSettings"`
	TrackerDates map[string]string      `json:"trackerDates"`
	Settings     GlobalSettings         `json:"settings"`
}

// NewStorage returns an empty Storage with all maps initialized.
func NewStorage() *Storage {
	return &Storage{
		Instances:    make(map[string][]TimeEntry),
		SortSettings: make(map[string]SortMode),
		TrackerDates: make(map[string]string),
	}
}
