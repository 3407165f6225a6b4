// Package session defines the review session identity. A session has no
// record of its own: it exists as long as a branch named after its target
// and source exists.
package session

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/Lfu001/cresca/internal/core/validate"
)

// DefaultPrefix starts every review branch name.
const DefaultPrefix = "review-"

// separator joins the encoded target and the source in a branch name.
// A separator inside the target is doubled so the split stays unambiguous.
const separator = "-"

// Session identifies one review of Source against Target.
//
// Branch naming:
//
//	review-main-develop            -> target "main",        source "develop"
//	review-main-feature-x          -> target "main",        source "feature-x"
//	review-release--1.0-feature-x  -> target "release-1.0", source "feature-x"
type Session struct {
	Target string `json:"target" yaml:"target"`
	Source string `json:"source" yaml:"source"`
	Branch string `json:"branch" yaml:"branch"`
}

// New builds the session for target and source, naming its review branch
// with prefix.
func New(prefix, target, source string) Session {
	return Session{
		Target: target,
		Source: source,
		Branch: prefix + encodeTarget(target) + separator + source,
	}
}

// Parse recovers the session encoded in branch. It returns false when branch
// is not a review branch for prefix.
func Parse(branch, prefix string) (Session, bool) {
	rest, ok := strings.CutPrefix(branch, prefix)
	if !ok || rest == "" {
		return Session{}, false
	}

	var target strings.Builder
	for i := 0; i < len(rest); i++ {
		if rest[i] != separator[0] {
			target.WriteByte(rest[i])
			continue
		}
		if i+1 < len(rest) && rest[i+1] == separator[0] {
			target.WriteByte(separator[0])
			i++
			continue
		}

		source := rest[i+1:]
		if target.Len() == 0 || source == "" {
			return Session{}, false
		}
		return Session{Target: target.String(), Source: source, Branch: branch}, true
	}

	return Session{}, false
}

// Validate checks that target and source can be encoded into a review
// branch name that Parse reads back unchanged.
func Validate(target, source string) error {
	err := criterio.ValidateStruct(
		validate.BranchNameField("target", target),
		validate.BranchNameField("source", source),
	)
	if err != nil {
		return err
	}

	if target == source {
		return criterio.NewFieldErrors("source", fmt.Errorf("must differ from target %q", target))
	}
	return nil
}

func encodeTarget(target string) string {
	return strings.ReplaceAll(target, separator, separator+separator)
}
