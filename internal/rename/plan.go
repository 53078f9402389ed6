// Package rename computes and applies canonical post folder names.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/siwuxie/postctl/internal/post"
	"github.com/siwuxie/postctl/internal/slug"
)

// Entry is one planned rename. Plans are ephemeral: recomputed per scan,
// never persisted.
type Entry struct {
	Old string
	New string
}

// Plan scans the immediate subdirectories of root in lexical order and
// returns the renames needed to make each folder name match its metadata.
// Folders with missing metadata or an invalid date are skipped with a
// warning; already-canonical folders produce no entry. The error is non-nil
// only when root itself cannot be listed.
func Plan(root string) ([]Entry, []string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list posts directory: %w", err)
	}

	var plan []Entry
	var warnings []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()

		meta, ok := post.ReadMetadata(filepath.Join(root, name))
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no usable metadata in %q, skipped", name))
			continue
		}

		datePart, err := canonicalDate(meta.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid date %q in %q, skipped", meta.Date, name))
			continue
		}

		canonical := datePart + "-" + slug.Make(meta.Title)
		if canonical != name {
			plan = append(plan, Entry{Old: name, New: canonical})
		}
	}
	return plan, warnings, nil
}

// canonicalDate validates the leading YYYY-MM-DD of a date field.
// Anything past the tenth character (a time of day, usually) is ignored.
func canonicalDate(raw string) (string, error) {
	runes := []rune(raw)
	if len(runes) < 10 {
		return "", fmt.Errorf("date %q too short", raw)
	}
	prefix := string(runes[:10])
	if _, err := time.Parse("2006-01-02", prefix); err != nil {
		return "", err
	}
	return prefix, nil
}
