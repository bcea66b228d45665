package identity

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}
	return path
}

func TestGuardStampsOncePerCycle(t *testing.T) {
	path := writeDoc(t, "```time-tracker\n```")
	g := NewGuard()

	changed, err := g.StampFile(path, fenceLabel)
	if err != nil {
		t.Fatalf("StampFile failed: %v", err)
	}
	if !changed {
		t.Fatal("first StampFile reported no change")
	}
	if !g.Stamped(path) {
		t.Error("file not marked as processed after stamping")
	}

	// Strip the marker behind the guard's back; without invalidation
	// the second pass must not touch the file.
	if err := os.WriteFile(path, []byte("```time-tracker\n```"), 0644); err != nil {
		t.Fatalf("failed to rewrite test document: %v", err)
	}

	changed, err = g.StampFile(path, fenceLabel)
	if err != nil {
		t.Fatalf("second StampFile failed: %v", err)
	}
	if changed {
		t.Error("guarded StampFile rewrote an already-processed file")
	}
}

func TestGuardInvalidateReArms(t *testing.T) {
	path := writeDoc(t, "```time-tracker\n```")
	g := NewGuard()

	if _, err := g.StampFile(path, fenceLabel); err != nil {
		t.Fatalf("StampFile failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("```time-tracker\n```"), 0644); err != nil {
		t.Fatalf("failed to rewrite test document: %v", err)
	}
	g.Invalidate(path)

	changed, err := g.StampFile(path, fenceLabel)
	if err != nil {
		t.Fatalf("StampFile after Invalidate failed: %v", err)
	}
	if !changed {
		t.Error("invalidated file was not re-stamped")
	}
}

func TestGuardStampedFileNeedsNoRewrite(t *testing.T) {
	path := writeDoc(t, "```time-tracker\n<!-- tracker-id: fixed123 -->\n```")
	g := NewGuard()

	changed, err := g.StampFile(path, fenceLabel)
	if err != nil {
		t.Fatalf("StampFile failed: %v", err)
	}
	if changed {
		t.Error("fully stamped file was rewritten")
	}
	if !g.Stamped(path) {
		t.Error("clean file not marked as processed")
	}
}

func TestGuardMissingFile(t *testing.T) {
	g := NewGuard()

	if _, err := g.StampFile(filepath.Join(t.TempDir(), "absent.md"), fenceLabel); err == nil {
		t.Error("StampFile on a missing file returned no error")
	}
}
