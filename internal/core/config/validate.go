package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/paratrooper/internal/core/styles"
)

var iconSets = map[string]bool{
	IconSetDefault: true,
	IconSetDots:    true,
	IconSetCheck:   true,
	IconSetSimple:  true,
}

// Validate checks structural configuration constraints.
func (c Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.TaskFile == "" {
		errs = errs.Append("task_file", fmt.Errorf("path is required"))
	}
	if !iconSets[c.IconSet] {
		errs = errs.Append("icon_set", fmt.Errorf("unknown icon set %q: must be one of default, dots, check, simple", c.IconSet))
	}
	if _, ok := styles.GetPalette(c.Theme); !ok {
		errs = errs.Append("theme", fmt.Errorf("unknown theme %q: must be one of %v", c.Theme, styles.ThemeNames()))
	}
	if c.StaleDays < 1 {
		errs = errs.Append("stale_days", fmt.Errorf("must be at least 1"))
	}

	return errs.ToError()
}
