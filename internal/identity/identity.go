// Package identity generates tracker ids and stamps them into the
// fenced tracker regions of markdown documents. Stamping is structural:
// regions are located by line span, so repeated identical fences each
// receive their own id and re-running the pass never changes anything.
package identity

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// markerPattern matches the single-line id annotation embedded in a
// tracker region, e.g. "<!-- tracker-id: a1b2c3d4 -->".
var markerPattern = regexp.MustCompile(`<!--\s*tracker-id:\s*(\S+)\s*-->`)

// idAlphabet is the token charset. Lowercase base36 keeps ids short,
// URL-safe, and free of whitespace.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idLength gives ~41 bits of randomness; collisions across one user's
// documents are accepted as negligible and not checked against storage.
const idLength = 8

// NewTrackerID returns a fresh short random tracker id.
func NewTrackerID() string {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; a zeroed
		// buffer still yields a valid (if predictable) token.
		_ = err
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}

// MarkerLine renders the annotation line for a tracker id.
func MarkerLine(id string) string {
	return fmt.Sprintf("<!-- tracker-id: %s -->", id)
}

// ExtractID returns the first tracker id embedded in the given block
// text, or false when no marker is present.
func ExtractID(blockText string) (string, bool) {
	m := markerPattern.FindStringSubmatch(blockText)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractAllIDs returns every tracker id embedded in the given text,
// in document order. Used by the orphan cleanup pass.
func ExtractAllIDs(text string) []string {
	var ids []string
	for _, m := range markerPattern.FindAllStringSubmatch(text, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// EnsureIDs walks every fenced code region tagged with label and
// prepends a fresh marker line to each region that lacks one. Regions
// already carrying a marker are left untouched, which makes the pass
// idempotent. Returns the updated text and whether anything changed.
func EnsureIDs(documentText, label string) (string, bool) {
	lines := strings.Split(documentText, "\n")
	out := make([]string, 0, len(lines))
	modified := false

	i := 0
	for i < len(lines) {
		out = append(out, lines[i])
		if !opensFence(lines[i], label) {
			i++
			continue
		}

		// Collect the region body up to the closing fence (or EOF for
		// an unterminated fence).
		end := i + 1
		for end < len(lines) && !closesFence(lines[end]) {
			end++
		}
		body := lines[i+1 : end]

		if _, found := ExtractID(strings.Join(body, "\n")); !found {
			out = append(out, MarkerLine(NewTrackerID()))
			modified = true
		}
		out = append(out, body...)
		if end < len(lines) {
			out = append(out, lines[end])
		}
		i = end + 1
	}

	return strings.Join(out, "\n"), modified
}

// opensFence reports whether the line opens a fenced region tagged with
// the given label.
func opensFence(line, label string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return false
	}
	return strings.TrimSpace(strings.TrimLeft(trimmed, "`")) == label
}

// closesFence reports whether the line terminates a fenced region.
func closesFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") && strings.TrimLeft(trimmed, "`") == ""
}
