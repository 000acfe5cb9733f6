package config

import (
	"github.com/jutil-go/jutil/src/internal/log"
)

// Target receives the logger settings of a configuration.
type Target interface {
	SetThreshold(level log.Level) error
	SetIndent(n int)
	SetColor(enabled bool)
}

// HelpStyler receives the help templates of a configuration.
type HelpStyler interface {
	SetHelpTemplates(flag, description string) error
}

// Apply pushes the [log] settings into logger and, when styler is not nil,
// the [help] templates into styler. The configuration should be validated
// first; an invalid level is still rejected by the logger.
func (c *Config) Apply(logger Target, styler HelpStyler) error {
	if c.Log != nil {
		level, err := log.ParseLevel(c.Log.Level)
		if err != nil {
			return err
		}
		logger.SetColor(c.Log.ColorEnabled())
		if err := logger.SetThreshold(level); err != nil {
			return err
		}
		logger.SetIndent(c.Log.Indent)
	}

	if c.Help != nil && styler != nil {
		if err := styler.SetHelpTemplates(c.Help.FlagTemplate, c.Help.DescriptionTemplate); err != nil {
			return err
		}
	}
	return nil
}
