// Package config holds the effective postctl configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither a config file nor environment overrides exist.
const (
	DefaultAuthor    = "思无邪"
	DefaultPostsRoot = "posts"
)

// FileName is the optional per-blog config file looked up in the working directory.
const FileName = "postctl.yml"

// Environment variables overriding file and default values.
const (
	EnvAuthor    = "POSTCTL_AUTHOR"
	EnvPostsRoot = "POSTCTL_POSTS_DIR"
)

// Config is the resolved configuration shared by both commands.
type Config struct {
	Author    string `yaml:"author"`
	PostsRoot string `yaml:"posts_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Author: DefaultAuthor, PostsRoot: DefaultPostsRoot}
}

// Load resolves the configuration for a blog rooted at dir.
// Precedence, lowest to highest: defaults, postctl.yml, environment.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// pointer fields distinguish "absent" (keep default) from an
		// explicitly set empty value (rejected by Validate below)
		var file struct {
			Author    *string `yaml:"author"`
			PostsRoot *string `yaml:"posts_dir"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
		if file.Author != nil {
			cfg.Author = *file.Author
		}
		if file.PostsRoot != nil {
			cfg.PostsRoot = *file.PostsRoot
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v, ok := os.LookupEnv(EnvAuthor); ok {
		cfg.Author = v
	}
	if v, ok := os.LookupEnv(EnvPostsRoot); ok {
		cfg.PostsRoot = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the resolved configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Author, validation.Required),
		validation.Field(&c.PostsRoot, validation.Required),
	)
}
