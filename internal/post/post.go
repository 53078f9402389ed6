// Package post creates post folders and reads the front matter inside them.
package post

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/siwuxie/postctl/internal/config"
	"github.com/siwuxie/postctl/internal/slug"
)

// Canonical metadata filename and the fallback extension scanned for.
const (
	MetadataFile = "index.qmd"
	MetadataExt  = ".qmd"
)

// File and directory permissions used across the project.
const (
	FilePerm = 0644
	DirPerm  = 0755
)

// ErrPostExists is returned when the target post folder is already present.
// Creation never overwrites existing posts.
var ErrPostExists = errors.New("post folder already exists")

const placeholderBody = "Start writing your post here...\n"

// Frontmatter is the metadata block written at the top of a new post.
type Frontmatter struct {
	Title      string   `yaml:"title"`
	Author     string   `yaml:"author"`
	Date       string   `yaml:"date"`
	Categories []string `yaml:"categories"`
}

// Create makes a dated post folder under cfg.PostsRoot and writes its
// index.qmd. The folder name is now's date plus the slugged title; the front
// matter keeps the raw title. Returns the path of the created file.
func Create(cfg config.Config, title string, now time.Time) (string, error) {
	if title == "" {
		return "", errors.New("post title must not be empty")
	}

	dirName := now.Format("2006-01-02") + "-" + slug.Make(title)

	if err := os.MkdirAll(cfg.PostsRoot, DirPerm); err != nil {
		return "", fmt.Errorf("failed to create posts directory: %w", err)
	}

	dir := filepath.Join(cfg.PostsRoot, dirName)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrPostExists, dir)
	}
	if err := os.Mkdir(dir, DirPerm); err != nil {
		return "", fmt.Errorf("failed to create post folder: %w", err)
	}

	fm := Frontmatter{
		Title:      title,
		Author:     cfg.Author,
		Date:       now.Format("2006-01-02 15:04"),
		Categories: []string{},
	}
	doc, err := renderDocument(fm)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, MetadataFile)
	if err := os.WriteFile(path, doc, FilePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func renderDocument(fm Frontmatter) ([]byte, error) {
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(placeholderBody)
	return buf.Bytes(), nil
}
