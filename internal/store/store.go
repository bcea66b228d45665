package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrIndexOutOfRange is returned for structural mutations addressing a
// row position the block does not have.
var ErrIndexOutOfRange = errors.New("index out of range")

// Store wraps a Storage blob with the block-level operations. All
// mutations are synchronous and in-memory; persisting the blob after a
// mutation is the caller's responsibility, and a failed save is never
// rolled back.
type Store struct {
	data *Storage
	now  func() time.Time
}

// New wraps an already-loaded Storage blob.
func New(data *Storage) *Store {
	return &Store{data: data, now: time.Now}
}

// Data exposes the underlying blob for persistence.
func (s *Store) Data() *Storage {
	return s.data
}

// Block ensures the block exists, initializing an empty entry sequence,
// sort mode "none", and today's date as the reference date on first
// sight of a tracker id.
func (s *Store) Block(id string) {
	if _, ok := s.data.Instances[id]; ok {
		return
	}
	s.data.Instances[id] = []TimeEntry{}
	s.data.SortSettings[id] = SortNone
	s.data.TrackerDates[id] = s.now().Format("2006-01-02")
}

// Has reports whether a block is present without creating it.
func (s *Store) Has(id string) bool {
	_, ok := s.data.Instances[id]
	return ok
}

// Entries returns the block's entry sequence in insertion order.
func (s *Store) Entries(id string) []TimeEntry {
	s.Block(id)
	return s.data.Instances[id]
}

// SortMode returns the block's sort preference.
func (s *Store) SortMode(id string) SortMode {
	s.Block(id)
	return s.data.SortSettings[id]
}

// ReferenceDate returns the block's reference date, the default date
// for new rows.
func (s *Store) ReferenceDate(id string) string {
	s.Block(id)
	return s.data.TrackerDates[id]
}

// Append adds an entry to the end of the block's sequence. A non-empty
// project name is added to the global project catalog.
func (s *Store) Append(id string, e TimeEntry) {
	s.Block(id)
	s.data.Instances[id] = append(s.data.Instances[id], e)
	s.AddProject(e.Project)
}

// RemoveAt deletes the entry at the given position. Removal is
// structural: the caller addresses the exact row, so duplicate entries
// are never confused with one another.
func (s *Store) RemoveAt(id string, index int) (TimeEntry, error) {
	s.Block(id)
	entries := s.data.Instances[id]
	if index < 0 || index >= len(entries) {
		return TimeEntry{}, fmt.Errorf("%w: block has %d entries", ErrIndexOutOfRange, len(entries))
	}

	removed := entries[index]
	s.data.Instances[id] = append(entries[:index], entries[index+1:]...)
	return removed, nil
}

// SetSort stores the block's sort preference.
func (s *Store) SetSort(id string, mode SortMode) {
	s.Block(id)
	s.data.SortSettings[id] = mode
}

// SetReferenceDate changes the block's reference date and back-fills
// the date of every existing entry in the block. This is a bulk
// overwrite, not just a new default for future rows.
func (s *Store) SetReferenceDate(id, date string) {
	s.Block(id)
	s.data.TrackerDates[id] = date
	entries := s.data.Instances[id]
	for i := range entries {
		entries[i].Date = date
	}
}

// AddProject adds a project name to the global catalog unless it is
// blank or already present. The catalog keeps insertion order.
func (s *Store) AddProject(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	for _, p := range s.data.Settings.Projects {
		if p == name {
			return
		}
	}
	s.data.Settings.Projects = append(s.data.Settings.Projects, name)
}

// Remove deletes a block and its settings entirely. Used by the orphan
// cleanup pass; the engine itself never removes blocks.
func (s *Store) Remove(id string) {
	delete(s.data.Instances, id)
	delete(s.data.SortSettings, id)
	delete(s.data.TrackerDates, id)
}

// TrackerIDs returns all known tracker ids in sorted order so that
// cross-block walks are deterministic.
func (s *Store) TrackerIDs() []string {
	ids := make([]string, 0, len(s.data.Instances))
	for id := range s.data.Instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AllEntries flattens every block's entries, blocks in sorted-id order
// and entries in insertion order.
func (s *Store) AllEntries() []TimeEntry {
	var all []TimeEntry
	for _, id := range s.TrackerIDs() {
		all = append(all, s.data.Instances[id]...)
	}
	return all
}
