package commands

import (
	"github.com/Lfu001/cresca/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	GitPath    string
	Remote     string
	Verbose    bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// Apply overrides config values with the global flags that were set.
func (f *Flags) Apply(cfg *config.Config) {
	if f.GitPath != "" {
		cfg.GitPath = f.GitPath
	}
	if f.Remote != "" {
		cfg.Remote = f.Remote
	}
}
