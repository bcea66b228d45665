package cmd

import (
	"fmt"

	"github.com/vollan/takt/internal/config"
	"github.com/vollan/takt/internal/store"
)

// openStore loads the full storage blob and runs the one-time project
// catalog migration. Returns false after reporting when loading fails.
func openStore() (*store.Store, *store.Persister, bool) {
	dataDir, err := deps.DataDir()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil, nil, false
	}

	persister := store.NewPersister(dataDir)
	data, err := persister.Load()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read tracker storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the storage file is readable in %s\n", dataDir)
		deps.Exit(1)
		return nil, nil, false
	}

	s := store.New(data)
	if s.SeedProjects() {
		// Persist the migration immediately so it never re-runs.
		if err := persister.Save(s.Data()); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Warning: Failed to persist project catalog migration")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
	}

	return s, persister, true
}

// saveStore writes the full blob back. The in-memory mutation is not
// rolled back on failure; the error is reported and the command exits
// non-zero.
func saveStore(persister *store.Persister, s *store.Store) bool {
	if err := persister.Save(s.Data()); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save tracker storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: The change is not persisted; re-run the command once the data directory is writable")
		deps.Exit(1)
		return false
	}
	return true
}

// loadCLIConfig reads the app config, reporting failures.
func loadCLIConfig() (config.Config, bool) {
	cfg, err := deps.Config()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return cfg, false
	}
	return cfg, true
}

// requireBlock reports and exits when the tracker id is unknown, so
// read-only commands never create blocks as a side effect.
func requireBlock(s *store.Store, id string) bool {
	if s.Has(id) {
		return true
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown tracker id '%s'\n", id)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'takt stamp <file>' to register tracker blocks, or 'takt add' to create one")
	deps.Exit(1)
	return false
}
