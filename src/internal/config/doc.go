// Package config loads the optional TOML configuration of a jutil host.
//
// # Configuration Structure
//
//	[log]
//	level = "debug"   # proof, debug, warn, message, raw, error, death or "1".."7"
//	indent = 0        # 0..64
//	color = true
//
//	[help]
//	title = "Usage:"
//	flag_template = "-{{short}}, --{{long}}{{value}}"
//	description_template = "{{description}}"
//	output_file = "help.txt"   # relative to this file
//
// The level is always a string; a number must be quoted (level = "3").
//
// Every field is optional; DefaultConfig shows the values used when a field
// or the whole file is missing.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/jutil.toml", logger)
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err // ValidationErrors lists every problem
//	}
package config
