// Package config loads commitgoblin settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigFile = ".commitgoblin.toml"

	DefaultAddVerb    = "Add"
	DefaultRemoveVerb = "Remove"
	DefaultPattern    = "*.md"
)

// Config represents the commitgoblin configuration
type Config struct {
	Remote         string   `toml:"remote"` // empty means git's push default
	Branch         string   `toml:"branch"`
	Prestage       bool     `toml:"prestage"`
	Push           bool     `toml:"push"`
	AddVerb        string   `toml:"add_verb"`
	RemoveVerb     string   `toml:"remove_verb"`
	Pattern        string   `toml:"pattern"`
	Exclude        []string `toml:"exclude"`
	Lenient        bool     `toml:"lenient"` // always exit 0
	DebugLog       string   `toml:"debug_log"`
	CommandTimeout Duration `toml:"command_timeout"`

	path string // file the config was read from, empty for defaults
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	if parsed < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", string(text))
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prestage:   true,
		Push:       true,
		AddVerb:    DefaultAddVerb,
		RemoveVerb: DefaultRemoveVerb,
		Pattern:    DefaultPattern,
		Exclude:    []string{"node_modules"},
	}
}

// FindConfig finds the config file by walking up from dir. It returns an
// empty path without error when no file exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads the config at path, or searches upward from dir when path is
// empty. Missing keys keep their defaults.
func Load(path, dir string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		found, err := FindConfig(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.path = path
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.AddVerb == "" {
		return fmt.Errorf("add_verb must not be empty")
	}
	if c.RemoveVerb == "" {
		return fmt.Errorf("remove_verb must not be empty")
	}
	if c.Pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("pattern %q: %w", c.Pattern, err)
	}
	if c.Branch != "" && c.Remote == "" {
		return fmt.Errorf("branch %q requires a remote", c.Branch)
	}
	return nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// Timeout returns the per-command timeout, zero for none
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.CommandTimeout)
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.path = path
	return nil
}
