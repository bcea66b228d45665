package store

import "strings"

// SeedProjects runs the one-time migration that populates the project
// catalog from historical entry data. Blocks are visited in sorted-id
// order and entries in insertion order, so the seeded catalog order is
// stable. Guarded by the persisted ProjectsSeeded flag; re-running is a
// no-op. Returns whether the migration ran.
func (s *Store) SeedProjects() bool {
	if s.data.Settings.ProjectsSeeded {
		return false
	}

	for _, id := range s.TrackerIDs() {
		for _, e := range s.data.Instances[id] {
			if strings.TrimSpace(e.Project) == "" {
				continue
			}
			s.AddProject(e.Project)
		}
	}

	s.data.Settings.ProjectsSeeded = true
	return true
}
