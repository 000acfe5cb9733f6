package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantPaths []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "numeric level",
			mutate: func(c *Config) { c.Log.Level = "3" },
		},
		{
			name:      "unknown level",
			mutate:    func(c *Config) { c.Log.Level = "loud" },
			wantPaths: []string{"log.level"},
		},
		{
			name:      "level out of range",
			mutate:    func(c *Config) { c.Log.Level = "9" },
			wantPaths: []string{"log.level"},
		},
		{
			name:      "level wrapping past int32",
			mutate:    func(c *Config) { c.Log.Level = "4294967298" },
			wantPaths: []string{"log.level"},
		},
		{
			name:      "negative level wrapping past int32",
			mutate:    func(c *Config) { c.Log.Level = "-4294967295" },
			wantPaths: []string{"log.level"},
		},
		{
			name:      "negative indent",
			mutate:    func(c *Config) { c.Log.Indent = -1 },
			wantPaths: []string{"log.indent"},
		},
		{
			name:      "huge indent",
			mutate:    func(c *Config) { c.Log.Indent = 65 },
			wantPaths: []string{"log.indent"},
		},
		{
			name:      "unbalanced template",
			mutate:    func(c *Config) { c.Help.FlagTemplate = "-{{short" },
			wantPaths: []string{"help.flag_template"},
		},
		{
			name: "several problems",
			mutate: func(c *Config) {
				c.Log.Level = ""
				c.Help.DescriptionTemplate = "{{description"
			},
			wantPaths: []string{"log.level", "help.description_template"},
		},
		{
			name:      "missing sections",
			mutate:    func(c *Config) { c.Log, c.Help = nil, nil },
			wantPaths: []string{"log", "help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.ValidateConfig()
			if len(tt.wantPaths) == 0 {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidationErrors, got %v", err)
			}
			if len(verrs) != len(tt.wantPaths) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tt.wantPaths), len(verrs), verrs)
			}
			for i, path := range tt.wantPaths {
				if verrs[i].FieldPath != path {
					t.Errorf("Expected error %d at %s, got %s", i, path, verrs[i].FieldPath)
				}
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	verrs := ValidationErrors{
		{FieldPath: "log.level", Message: "field is required"},
		{FieldPath: "log.indent", Message: "must be >= 0"},
	}

	msg := verrs.Error()
	if !strings.HasPrefix(msg, "validation failed with 2 error(s):") {
		t.Errorf("Unexpected header: %s", msg)
	}
	if !strings.Contains(msg, "  2. log.indent: must be >= 0") {
		t.Errorf("Expected numbered entry, got: %s", msg)
	}
	if (ValidationErrors{}).Error() != "no validation errors" {
		t.Errorf("Unexpected empty message")
	}
}
