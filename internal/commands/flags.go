package commands

import (
	"github.com/colonyops/paratrooper/internal/core/config"
)

// Flags are the global CLI flags shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	// TaskFile overrides the configured task file path.
	TaskFile string
	// Today overrides the wall clock (DD-MM-YYYY); used for testing
	// and for backfilling.
	Today string
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return config.DefaultPath()
}
