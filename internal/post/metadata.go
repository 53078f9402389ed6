package post

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Line-anchored field patterns. Intentionally forgiving: whatever surrounds
// the header block, a `title:` or `date:` line at column zero is enough.
// Only the first match per field is used.
var (
	titlePattern = regexp.MustCompile(`(?m)^title:\s*["']?(.*?)["']?\r?$`)
	datePattern  = regexp.MustCompile(`(?m)^date:\s*["']?(.*?)["']?\r?$`)
)

// Metadata is the subset of front matter the rename tool cares about.
type Metadata struct {
	Title string
	Date  string
}

// ReadMetadata extracts title and date from a post folder's .qmd file.
// It prefers index.qmd, falling back to the lexically first *.qmd file.
// The second return is false when no usable metadata was found; callers
// treat that as "skip this folder", never as a fatal condition.
func ReadMetadata(folder string) (*Metadata, bool) {
	path := filepath.Join(folder, MetadataFile)
	if _, err := os.Stat(path); err != nil {
		path = firstMetadataFile(folder)
		if path == "" {
			return nil, false
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	title, ok := matchField(titlePattern, content)
	if !ok {
		return nil, false
	}
	date, ok := matchField(datePattern, content)
	if !ok {
		return nil, false
	}
	return &Metadata{Title: title, Date: date}, true
}

// firstMetadataFile returns the lexically first .qmd file in folder, or "".
func firstMetadataFile(folder string) string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return ""
	}
	// os.ReadDir sorts by filename
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), MetadataExt) {
			return filepath.Join(folder, e.Name())
		}
	}
	return ""
}

func matchField(re *regexp.Regexp, content []byte) (string, bool) {
	m := re.FindSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(string(m[1])), true
}
