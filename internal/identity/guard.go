package identity

import "os"

// Guard tracks which files have already been through the stamping pass
// during the current load cycle. It replaces a mutable "already fixed"
// flag with an explicit processed set: a file is rewritten at most once
// until the host's change notification invalidates it.
type Guard struct {
	stamped map[string]bool
}

// NewGuard returns an empty Guard.
func NewGuard() *Guard {
	return &Guard{stamped: make(map[string]bool)}
}

// Stamped reports whether the file was already processed this cycle.
func (g *Guard) Stamped(path string) bool {
	return g.stamped[path]
}

// Invalidate re-arms the stamping pass for a file. The host calls this
// from its change-notification channel when the file is edited.
func (g *Guard) Invalidate(path string) {
	delete(g.stamped, path)
}

// StampFile runs EnsureIDs over the file at path, rewriting it in place
// when markers were missing. The file is marked processed whether or
// not it needed changes; subsequent calls are no-ops until Invalidate.
// Returns whether the file was rewritten.
func (g *Guard) StampFile(path, label string) (bool, error) {
	if g.stamped[path] {
		return false, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	updated, changed := EnsureIDs(string(raw), label)
	if changed {
		info, err := os.Stat(path)
		if err != nil {
			return false, err
		}
		if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
			return false, err
		}
	}

	g.stamped[path] = true
	return changed, nil
}
