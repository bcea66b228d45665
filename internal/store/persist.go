package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// storageKey is the single diskv key holding the whole blob.
const storageKey = "plugin-storage.json"

// Persister reads and writes the storage blob. There are no partial or
// incremental writes: Save always rewrites the full data set.
type Persister struct {
	d *diskv.Diskv
}

// NewPersister returns a Persister rooted at dataDir. The directory is
// created on first write.
func NewPersister(dataDir string) *Persister {
	return &Persister{
		d: diskv.New(diskv.Options{
			BasePath:     dataDir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

// Load reads the blob, returning an empty Storage when none exists yet.
// Maps absent from the persisted JSON are re-initialized so callers can
// always index into them.
func (p *Persister) Load() (*Storage, error) {
	if !p.d.Has(storageKey) {
		return NewStorage(), nil
	}

	raw, err := p.d.Read(storageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	data := NewStorage()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to decode storage: %w", err)
	}

	if data.Instances == nil {
		data.Instances = make(map[string][]TimeEntry)
	}
	if data.SortSettings == nil {
		data.SortSettings = make(map[string]SortMode)
	}
	if data.TrackerDates == nil {
		data.TrackerDates = make(map[string]string)
	}

	return data, nil
}

// Save writes the full blob.
func (p *Persister) Save(data *Storage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage: %w", err)
	}
	if err := p.d.Write(storageKey, raw); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}
