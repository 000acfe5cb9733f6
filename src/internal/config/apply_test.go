package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jutil-go/jutil/src/internal/args"
	jerrors "github.com/jutil-go/jutil/src/internal/errors"
	"github.com/jutil-go/jutil/src/internal/log"
)

func TestApply(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := log.New(log.WithStdout(&stdout), log.WithStderr(&stderr))
	dispatcher := args.NewDispatcher(logger)

	disabled := false
	config := DefaultConfig()
	config.Log.Level = "warn"
	config.Log.Indent = 2
	config.Log.Color = &disabled
	config.Help.FlagTemplate = "--{{long}}"

	if err := config.Apply(logger, dispatcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if logger.Threshold() != log.LevelWarn {
		t.Errorf("Expected threshold WARN, got %s", logger.Threshold())
	}
	if logger.Indent() != 2 {
		t.Errorf("Expected indent 2, got %d", logger.Indent())
	}

	logger.ResetIndent()
	logger.Warnf("plain")
	if stdout.String() != "[WRN] plain\n" {
		t.Errorf("Expected uncoloured output, got %q", stdout.String())
	}

	var help strings.Builder
	if err := dispatcher.WriteHelp(&help, "", []args.Bundle{{Short: "h", Long: "help", Description: "Help"}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(help.String(), "        --help\n") {
		t.Errorf("Expected restyled flag line, got %q", help.String())
	}
}

func TestApply_InvalidLevel(t *testing.T) {
	logger := log.New(log.WithStdout(&bytes.Buffer{}), log.WithStderr(&bytes.Buffer{}))

	config := DefaultConfig()
	config.Log.Level = "loud"

	err := config.Apply(logger, nil)
	if !jerrors.HasCode(err, jerrors.ErrCodeParse) {
		t.Errorf("Expected parse error, got %v", err)
	}
	if logger.Threshold() != log.DefaultThreshold {
		t.Errorf("Expected threshold to be unchanged, got %s", logger.Threshold())
	}
}

func TestApply_OverflowingLevel(t *testing.T) {
	logger := log.New(log.WithStdout(&bytes.Buffer{}), log.WithStderr(&bytes.Buffer{}), log.WithThreshold(log.LevelWarn))

	config := DefaultConfig()
	config.Log.Level = "4294967298"

	err := config.Apply(logger, nil)
	if !jerrors.HasCode(err, jerrors.ErrCodeParse) {
		t.Errorf("Expected parse error, got %v", err)
	}
	if logger.Threshold() != log.LevelWarn {
		t.Errorf("Expected threshold to stay WARN, got %s", logger.Threshold())
	}
}
