// Package config defines punch configuration and how it is loaded.
//
// Values are layered, lowest precedence first: defaults from New, an optional
// YAML file, then PUNCH_* environment variables. Command-line flags are applied
// on top by the cli package.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/roach88/punch/internal/store"
)

// DirName is the directory under the user's home holding punch data.
const DirName = ".punch"

// Config contains process configuration.
type Config struct {
	// LogLevel controls diagnostic verbosity on stderr: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Store selects the log backend: file or sqlite.
	Store string `koanf:"store"`

	// LogPath is the line log used by the file backend.
	LogPath string `koanf:"log_path"`

	// DBPath is the database used by the sqlite backend.
	DBPath string `koanf:"db_path"`
}

// New returns the defaults for a user whose home directory is home.
func New(home string) *Config {
	dir := filepath.Join(home, DirName)
	return &Config{
		LogLevel: "warn",
		Store:    store.BackendFile,
		LogPath:  filepath.Join(dir, "punch.log"),
		DBPath:   filepath.Join(dir, "punch.db"),
	}
}

// StoreOptions returns the store.Options for the configured backend.
func (c *Config) StoreOptions() store.Options {
	path := c.LogPath
	if c.Store == store.BackendSQLite {
		path = c.DBPath
	}
	return store.Options{Backend: c.Store, Path: path}
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}
	return level, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	valid := false
	for _, b := range store.ValidBackends {
		if c.Store == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: store %q must be one of %v", ErrInvalidConfig, c.Store, store.ValidBackends)
	}
	if c.LogPath == "" {
		return fmt.Errorf("%w: log_path must not be empty", ErrInvalidConfig)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// expandHome replaces a leading "~/" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
