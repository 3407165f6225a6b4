package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/Lfu001/cresca/internal/core/config"
)

// ConfigCheck validates the loaded configuration and reports its warnings.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

// NewConfigCheck creates a config check for cfg loaded from path.
func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if err := c.cfg.ValidateDeep(c.path); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Items = append(result.Items, fail(fe.Field, fe.Err.Error()))
			}
		} else {
			result.Items = append(result.Items, fail("config", err.Error()))
		}
		return result
	}

	detail := "using defaults"
	if c.path != "" {
		if _, err := os.Stat(c.path); err == nil {
			detail = c.path
		} else {
			detail = "using defaults, no file at " + c.path
		}
	}
	result.Items = append(result.Items, pass("config", detail))

	for _, w := range c.cfg.Warnings() {
		result.Items = append(result.Items, warn(w.Item, fmt.Sprintf("%s: %s", w.Category, w.Message)))
	}

	return result
}
