// Package config handles configuration loading and validation for acrodrill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/acrodrill/internal/core/styles"
)

// Order controls how cards are presented after loading.
type Order string

const (
	OrderShuffle Order = "shuffle"
	OrderSorted  Order = "sorted"
)

// Config holds the application configuration.
type Config struct {
	Sources     []Source  `yaml:"sources"`
	Order       Order     `yaml:"order"`
	Strict      bool      `yaml:"strict"`       // debug panel strict flag, presentation only
	OpenCommand string    `yaml:"open_command"` // empty = platform default
	TUI         TUIConfig `yaml:"tui"`
	DataDir     string    `yaml:"-"` // set by caller, not from config file
	BaseDir     string    `yaml:"-"` // relative source paths resolve against this
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	Watch bool   `yaml:"watch"` // reload when a source file changes
}

// Source is a named CSV input. Path may be a doublestar glob pattern.
type Source struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Enabled *bool  `yaml:"enabled,omitempty"` // nil = enabled
}

// IsEnabled reports whether the source participates in loading.
func (s Source) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// IsPattern reports whether Path contains glob metacharacters.
func (s Source) IsPattern() bool {
	return strings.ContainsAny(s.Path, "*?[{")
}

// Resolve returns the files the source refers to. Relative paths are joined
// to baseDir. A plain path is returned as-is even when missing so that the
// loader can report it; a pattern must match at least one file.
func (s Source) Resolve(baseDir string) ([]string, error) {
	path := s.Path
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	if !s.IsPattern() {
		return []string{path}, nil
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", s.Path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", s.Path)
	}
	slices.Sort(matches)
	return matches, nil
}

// BoolPtr is a helper for optional config booleans.
func BoolPtr(b bool) *bool { return &b }

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Sources: []Source{},
		Order:   OrderShuffle,
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
		cfg.BaseDir = filepath.Dir(configPath)
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Order == "" {
		c.Order = defaults.Order
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Sources == nil {
		c.Sources = []Source{}
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	switch c.Order {
	case OrderShuffle, OrderSorted:
	default:
		return fmt.Errorf("order must be %q or %q, got %q", OrderShuffle, OrderSorted, c.Order)
	}

	seen := make(map[string]bool, len(c.Sources))
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d]: name is required", i)
		}
		if src.Path == "" {
			return fmt.Errorf("source %q: path is required", src.Name)
		}
		if seen[src.Name] {
			return fmt.Errorf("duplicate source name %q", src.Name)
		}
		seen[src.Name] = true
		if src.IsPattern() && !doublestar.ValidatePattern(filepath.ToSlash(src.Path)) {
			return fmt.Errorf("source %q: invalid glob pattern %q", src.Name, src.Path)
		}
	}

	return nil
}

// SourcesFromPaths builds enabled sources for paths given on the command line.
func SourcesFromPaths(paths []string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, Source{Name: p, Path: p})
	}
	return sources
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
