package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"

	"github.com/Lfu001/cresca/internal/core/git"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category" yaml:"category"`
	Item     string `json:"item,omitempty" yaml:"item,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

// ValidateDeep runs Validate and then checks that the config file and the
// git executable are accessible. An empty configPath skips the file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("git_path", c.GitPath, gitExecutableExists),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Policy() == git.PolicyNone {
		warnings = append(warnings, ValidationWarning{
			Category: "Merge",
			Item:     "conflict_policy",
			Message:  "merge conflicts will stop `cresca review` until resolved by hand",
		})
	}

	if c.Status.MaxFiles < 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Status",
			Item:     "status.max_files",
			Message:  "every remaining file will be listed",
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// gitExecutableExists validates that the git path is executable.
func gitExecutableExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}
