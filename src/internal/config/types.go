package config

import (
	"path/filepath"

	"github.com/jutil-go/jutil/src/internal/utils"
)

// Config is the optional TOML configuration of a jutil host.
type Config struct {
	// Log holds logger settings.
	Log *LogConfig `toml:"log"`
	// Help holds help output settings.
	Help *HelpConfig `toml:"help"`

	_absConfigFilePath string
}

type LogConfig struct {
	// Level is the threshold name or a quoted number (default: "debug").
	Level string `toml:"level" validate:"required,log_level"`
	// Indent is the initial indentation width in spaces.
	Indent int `toml:"indent" validate:"gte=0,lte=64"`
	// Color enables ANSI colours in tags (default: true).
	Color *bool `toml:"color"`
}

type HelpConfig struct {
	// Title is printed above the flag list.
	Title string `toml:"title"`
	// FlagTemplate renders the first help line of each flag.
	FlagTemplate string `toml:"flag_template" validate:"required,help_template"`
	// DescriptionTemplate renders the second help line of each flag.
	DescriptionTemplate string `toml:"description_template" validate:"required,help_template"`
	// OutputFile, when set, receives a copy of the help text once the
	// configuration is loaded. Relative paths are resolved against the
	// configuration file's directory.
	OutputFile string `toml:"output_file"`
}

// ColorEnabled returns the colour setting, defaulting to true.
func (c *LogConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// GetConfigDir returns the directory holding the loaded configuration file.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsHelpOutputFile returns Help.OutputFile resolved against the
// configuration directory, or "" when it is not set.
func (c *Config) GetAbsHelpOutputFile() string {
	if c.Help == nil {
		return ""
	}
	return utils.ResolvePath(c.Help.OutputFile, c.GetConfigDir())
}
