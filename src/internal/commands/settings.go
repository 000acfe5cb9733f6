package commands

import (
	"fmt"
	"math"

	"github.com/jutil-go/jutil/src/internal/args"
	"github.com/jutil-go/jutil/src/internal/config"
	"github.com/jutil-go/jutil/src/internal/errors"
	"github.com/jutil-go/jutil/src/internal/log"
	"github.com/jutil-go/jutil/src/internal/utils"
)

// sleepTolerance is how far, in microseconds, a sleep may overshoot before
// it is reported.
const sleepTolerance = 10000.0

// setLevel accepts a number, passed to the logger as is so that an out of
// range value gets the logger's own report, or a level name.
func (a *App) setLevel(value string) error {
	if n, err := args.ParseLong(value); err == nil {
		if n < math.MinInt32 || n > math.MaxInt32 {
			n = -1
		}
		return a.log.SetThreshold(log.Level(n))
	}

	level, err := log.ParseLevel(value)
	if err != nil {
		a.log.Errorf("Unknown log level: %s", value)
		return err
	}
	return a.log.SetThreshold(level)
}

func (a *App) setIndent(value string) error {
	n, err := args.ParseLong(value)
	if err != nil {
		a.log.Errorf("Invalid indentation: %s", value)
		return err
	}
	if n < 0 || n > math.MaxInt32 {
		a.log.Errorf("Indentation out of range: %d", n)
		return errors.NewArgumentError(fmt.Sprintf("indentation out of range: %d", n), nil)
	}

	a.log.SetIndent(int(n))
	a.log.Debugf("Indentation set to %d", n)
	return nil
}

// loadConfig loads, validates and applies a configuration file. The
// effective configuration is echoed at DEBUG before it takes effect. When
// the file names a help output file, the help text is written there.
func (a *App) loadConfig(path string) error {
	cfg, err := config.LoadConfig(path, a.log)
	if err != nil {
		return err
	}

	if err := cfg.ValidateConfig(); err != nil {
		a.log.Errorf("Configuration validation failed:\n%v", err)
		return errors.NewValidationError("invalid configuration "+path, err)
	}

	if a.log.Enabled(log.LevelDebug) {
		data, err := cfg.SerializeConfig()
		if err != nil {
			a.log.Errorf("Failed to serialize config: %v", err)
			return errors.NewInternalError("failed to serialize config", err)
		}
		a.log.Debugf("---------------- Configuration START -----------------")
		a.log.Rawf("%s", data)
		a.log.Debugf("----------------- Configuration END ------------------")
	}

	if err := cfg.Apply(a.log, a.dispatcher); err != nil {
		return err
	}
	a.cfg = cfg

	if out := cfg.GetAbsHelpOutputFile(); out != "" {
		return a.writeHelp(out)
	}
	return nil
}

func (a *App) sleep(value string) error {
	ns, err := args.ParseLong(value)
	if err != nil {
		a.log.Errorf("Invalid sleep duration: %s", value)
		return err
	}
	if ns < 0 {
		a.log.Errorf("Sleep duration must not be negative: %d", ns)
		return errors.NewArgumentError(fmt.Sprintf("negative sleep duration: %d", ns), nil)
	}

	start := utils.TimestampMicros()
	utils.Sleep(ns)
	elapsed := utils.TimestampMicros() - start

	a.log.Messagef("Slept for %d ns, %.0f us elapsed", ns, elapsed)
	if !utils.FloatApproximates(elapsed, float64(ns)/1e3, sleepTolerance) {
		a.log.Warnf("Sleep overshot by %.0f us", elapsed-float64(ns)/1e3)
	}
	return nil
}
