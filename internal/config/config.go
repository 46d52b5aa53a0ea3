// Package config provides reading and writing of palette configuration.
// Supports both global (~/.palette/config.yaml) and local (.palette/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.palette/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .palette/config.yaml
	ScopeLocal
)

// Defaults applied when a value is not configured.
const (
	DefaultPalette    = "src/assets/colors/palette.jsonc"
	DefaultOutput     = "src/styles/variables.css"
	DefaultForeground = "purple.plum"
	DefaultBackground = "gray.white"
	DefaultMinRatio   = 4.5
)

// WCAG contrast ratios always fall within [1, 21].
const (
	MinMinRatio = 1.0
	MaxMinRatio = 21.0
)

// Paths holds input and output file locations.
type Paths struct {
	Palette string `yaml:"palette,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// Contrast holds the reference pair checked by verify.
type Contrast struct {
	Foreground string   `yaml:"foreground,omitempty"`
	Background string   `yaml:"background,omitempty"`
	MinRatio   *float64 `yaml:"min_ratio,omitempty"`
}

// Config contains configuration for palette.
type Config struct {
	Paths    Paths    `yaml:"paths,omitempty"`
	Contrast Contrast `yaml:"contrast,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Contrast.MinRatio != nil {
		v := *c.Contrast.MinRatio
		if v < MinMinRatio || v > MaxMinRatio {
			return fmt.Errorf("%w: contrast.min_ratio must be between %g and %g, got %g",
				ErrInvalidValue, MinMinRatio, MaxMinRatio, v)
		}
	}
	for key, ref := range map[string]string{
		"contrast.foreground": c.Contrast.Foreground,
		"contrast.background": c.Contrast.Background,
	} {
		if ref != "" && !validRef(ref) {
			return fmt.Errorf("%w: %s must be <category>.<shade>, got %q", ErrInvalidValue, key, ref)
		}
	}
	return nil
}

// validRef reports whether ref has a non-empty category and shade.
func validRef(ref string) bool {
	i := strings.LastIndex(ref, ".")
	return i > 0 && i < len(ref)-1
}

// PalettePath returns the palette file path (defaults to DefaultPalette).
func (c *Config) PalettePath() string {
	if c.Paths.Palette == "" {
		return DefaultPalette
	}
	return c.Paths.Palette
}

// OutputPath returns the stylesheet path (defaults to DefaultOutput).
func (c *Config) OutputPath() string {
	if c.Paths.Output == "" {
		return DefaultOutput
	}
	return c.Paths.Output
}

// Foreground returns the contrast foreground reference.
func (c *Config) Foreground() string {
	if c.Contrast.Foreground == "" {
		return DefaultForeground
	}
	return c.Contrast.Foreground
}

// Background returns the contrast background reference.
func (c *Config) Background() string {
	if c.Contrast.Background == "" {
		return DefaultBackground
	}
	return c.Contrast.Background
}

// MinRatio returns the minimum acceptable contrast ratio (defaults to 4.5).
func (c *Config) MinRatio() float64 {
	if c.Contrast.MinRatio == nil {
		return DefaultMinRatio
	}
	return *c.Contrast.MinRatio
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".palette", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.palette/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".palette", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return LoadFile(path, scope)
}

// LoadFile reads configuration from an explicit path. A missing file yields
// an empty config bound to that path.
func LoadFile(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
