package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PUNCH_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(home))
//  2. YAML file at PUNCH_CONFIG, else ~/.punch/config.yaml when it exists
//  3. env (prefix PUNCH_), e.g. PUNCH_STORE=sqlite
func Load(ctx context.Context) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: resolve home directory: %v", ErrLoadConfig, err)
	}
	return LoadFrom(ctx, home)
}

// LoadFrom is Load with an explicit home directory.
func LoadFrom(_ context.Context, home string) (*Config, error) {
	base := New(home)

	k := koanf.New(".")

	path := os.Getenv(EnvPrefix + "CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, DirName, "config.yaml")
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		// The default location is optional; an explicit one is not.
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// PUNCH_LOG_PATH -> log_path. Underscores are kept to match koanf tags.
	// Empty values and PUNCH_CONFIG itself are skipped.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(EnvPrefix))
		if value == "" || key == "config" {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.LogPath = expandHome(cfg.LogPath, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
