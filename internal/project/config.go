// Package project locates and loads mofmt.toml, the per-project
// formatting configuration.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"mofmt/internal/format"
)

const configFileName = "mofmt.toml"

// Config mirrors mofmt.toml.
type Config struct {
	Format FormatConfig `toml:"format"`
}

// FormatConfig holds the [format] table.
type FormatConfig struct {
	TabWidth   int `toml:"tab_width"`
	PrintWidth int `toml:"print_width"`
}

// DefaultConfig returns the built-in settings used when no mofmt.toml
// exists.
func DefaultConfig() Config {
	return Config{Format: FormatConfig{TabWidth: 2, PrintWidth: 80}}
}

// FindConfig walks from startDir toward the filesystem root looking
// for mofmt.toml. It reports the path and whether one was found.
func FindConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the config file at path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("format", "tab_width") && cfg.Format.TabWidth <= 0 {
		return Config{}, fmt.Errorf("%s: [format].tab_width must be positive", path)
	}
	if meta.IsDefined("format", "print_width") && cfg.Format.PrintWidth <= 0 {
		return Config{}, fmt.Errorf("%s: [format].print_width must be positive", path)
	}
	return cfg, nil
}

// Resolve finds and loads the nearest config above startDir, falling
// back to defaults when no mofmt.toml exists.
func Resolve(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Options converts the config into engine options.
func (c Config) Options() format.Options {
	return format.Options{TabWidth: c.Format.TabWidth, PrintWidth: c.Format.PrintWidth}
}
