package post

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFolder(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestReadMetadataQuotedValues(t *testing.T) {
	dir := writeFolder(t, map[string]string{
		MetadataFile: "---\ntitle: \"New Title\"\nauthor: \"a\"\ndate: '2025-01-02 09:15'\ncategories: []\n---\n\nbody\n",
	})
	meta, ok := ReadMetadata(dir)
	if !ok {
		t.Fatalf("expected metadata")
	}
	if meta.Title != "New Title" {
		t.Fatalf("expected unquoted title, got %q", meta.Title)
	}
	if meta.Date != "2025-01-02 09:15" {
		t.Fatalf("expected unquoted date, got %q", meta.Date)
	}
}

func TestReadMetadataFallsBackToFirstQmd(t *testing.T) {
	dir := writeFolder(t, map[string]string{
		"b.qmd":    "title: Second\ndate: 2025-02-02\n",
		"a.qmd":    "title: First\ndate: 2025-01-01\n",
		"notes.md": "title: Not Me\ndate: 2020-01-01\n",
	})
	meta, ok := ReadMetadata(dir)
	if !ok {
		t.Fatalf("expected metadata from fallback file")
	}
	if meta.Title != "First" {
		t.Fatalf("expected lexically first .qmd to win, got %q", meta.Title)
	}
}

func TestReadMetadataFirstMatchWins(t *testing.T) {
	dir := writeFolder(t, map[string]string{
		MetadataFile: "title: Winner\ndate: 2025-01-01\ntitle: Loser\ndate: 2024-12-31\n",
	})
	meta, ok := ReadMetadata(dir)
	if !ok {
		t.Fatalf("expected metadata")
	}
	if meta.Title != "Winner" || meta.Date != "2025-01-01" {
		t.Fatalf("expected first matches, got %+v", meta)
	}
}

func TestReadMetadataIgnoresIndentedFields(t *testing.T) {
	// only column-zero fields count; nested yaml keys must not match
	dir := writeFolder(t, map[string]string{
		MetadataFile: "  title: Indented\ntitle: Real\ndate: 2025-01-01\n",
	})
	meta, ok := ReadMetadata(dir)
	if !ok {
		t.Fatalf("expected metadata")
	}
	if meta.Title != "Real" {
		t.Fatalf("expected column-zero title, got %q", meta.Title)
	}
}

func TestReadMetadataAbsent(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
	}{
		{"empty folder", map[string]string{}},
		{"no qmd files", map[string]string{"readme.md": "title: x\ndate: 2025-01-01\n"}},
		{"missing title", map[string]string{MetadataFile: "date: 2025-01-01\n"}},
		{"missing date", map[string]string{MetadataFile: "title: x\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFolder(t, tc.files)
			if _, ok := ReadMetadata(dir); ok {
				t.Fatalf("expected no metadata")
			}
		})
	}
}
