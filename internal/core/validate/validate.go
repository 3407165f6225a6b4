// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Required rejects values that are empty after trimming whitespace.
func Required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// NoWhitespace rejects empty values and values containing whitespace.
func NoWhitespace(v string) error {
	if err := Required(v); err != nil {
		return err
	}
	if strings.ContainsAny(v, " \t\n") {
		return fmt.Errorf("%q must not contain whitespace", v)
	}
	return nil
}

// BranchName checks the parts of a branch name that cresca relies on. Git
// applies its own rules when the branch is created.
func BranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("branch name is required")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name %q must not start with %q", name, "-")
	case strings.ContainsAny(name, " \t\n"):
		return fmt.Errorf("branch name %q must not contain whitespace", name)
	}
	return nil
}

// BranchNameField returns a criterio validator for branch names.
func BranchNameField(field, name string) error {
	return criterio.Run(field, name, BranchName)
}
