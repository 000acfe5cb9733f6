package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jutil-go/jutil/src/internal/args"
	jerrors "github.com/jutil-go/jutil/src/internal/errors"
)

const (
	DefaultLevel               = "debug"
	DefaultTitle               = "Usage:"
	DefaultFlagTemplate        = args.DefaultFlagTemplate
	DefaultDescriptionTemplate = args.DefaultDescriptionTemplate
)

// Logger is what the loader reports through.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads and decodes a TOML configuration file. Missing sections
// and fields take their defaults. Decode errors are reported through logger
// with their line and column.
func LoadConfig(configPath string, logger Logger) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, jerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Errorf("Configuration file not found: %s", configFile)
		}
		return nil, jerrors.NewIOError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			logger.Errorf("%s", derr.String())
			row, col := derr.Position()
			logger.Errorf("Error at line %d, column %d", row, col)
			return nil, jerrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, jerrors.NewConfigError("failed to parse config file", err)
	}

	config.applyDefaults()
	config._absConfigFilePath = configFile

	logger.Debugf("Configuration file path: %s", configFile)
	if out := config.GetAbsHelpOutputFile(); out != "" {
		logger.Debugf("Help output file: %s", out)
	}

	return &config, nil
}

// SerializeConfig encodes the configuration back to TOML.
func (c *Config) SerializeConfig() ([]byte, error) {
	return toml.Marshal(c)
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}
	if c.Help == nil {
		c.Help = &HelpConfig{}
	}
	if c.Help.Title == "" {
		c.Help.Title = DefaultTitle
	}
	if c.Help.FlagTemplate == "" {
		c.Help.FlagTemplate = DefaultFlagTemplate
	}
	if c.Help.DescriptionTemplate == "" {
		c.Help.DescriptionTemplate = DefaultDescriptionTemplate
	}
}
