// Package config handles configuration loading and validation for cresca.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	GitPath        string       `yaml:"git_path"`
	Remote         string       `yaml:"remote"`
	BranchPrefix   string       `yaml:"branch_prefix"`
	ConflictPolicy string       `yaml:"conflict_policy"`
	Theme          string       `yaml:"theme"`
	Status         StatusConfig `yaml:"status"`
}

// StatusConfig controls the status command output.
type StatusConfig struct {
	// MaxFiles caps the listed remaining files. Negative lists every file.
	MaxFiles int `yaml:"max_files"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GitPath:        "git",
		Remote:         "origin",
		BranchPrefix:   "review-",
		ConflictPolicy: string(git.PolicyTheirs),
		Theme:          styles.DefaultTheme,
		Status: StatusConfig{
			MaxFiles: 10,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/cresca/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cresca", "config.yaml")
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.GitPath == "" {
		c.GitPath = defaults.GitPath
	}
	if c.Remote == "" {
		c.Remote = defaults.Remote
	}
	if c.BranchPrefix == "" {
		c.BranchPrefix = defaults.BranchPrefix
	}
	if c.ConflictPolicy == "" {
		c.ConflictPolicy = defaults.ConflictPolicy
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Status.MaxFiles == 0 {
		c.Status.MaxFiles = defaults.Status.MaxFiles
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("git_path", c.GitPath, validate.Required),
		criterio.Run("remote", c.Remote, validate.NoWhitespace),
		criterio.Run("branch_prefix", c.BranchPrefix, validate.NoWhitespace),
		criterio.Run("conflict_policy", c.ConflictPolicy, func(v string) error {
			_, err := git.ParseConflictPolicy(v)
			return err
		}),
		criterio.Run("theme", c.Theme, func(v string) error {
			if _, ok := styles.GetPalette(v); !ok {
				return fmt.Errorf("unknown theme %q (available: %s)", v, strings.Join(styles.ThemeNames(), ", "))
			}
			return nil
		}),
	)
}

// Policy returns the parsed conflict policy. Call after Validate.
func (c *Config) Policy() git.ConflictPolicy {
	p, err := git.ParseConflictPolicy(c.ConflictPolicy)
	if err != nil {
		return git.PolicyTheirs
	}
	return p
}
