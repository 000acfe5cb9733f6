package commands

import (
	"fmt"

	"github.com/jutil-go/jutil/src/internal/args"
	"github.com/jutil-go/jutil/src/internal/config"
	"github.com/jutil-go/jutil/src/internal/errors"
	"github.com/jutil-go/jutil/src/internal/log"
)

// App is the self-test host. It is not safe for concurrent use.
type App struct {
	log        *log.Logger
	dispatcher *args.Dispatcher
	cfg        *config.Config
	bundles    []args.Bundle
}

// NewApp creates a host that logs through logger and starts from the
// default configuration.
func NewApp(logger *log.Logger) *App {
	a := &App{
		log:        logger,
		dispatcher: args.NewDispatcher(logger),
		cfg:        config.DefaultConfig(),
	}
	a.bundles = []args.Bundle{
		{Short: "h", Long: "help", Description: "Print this help text and exit", Callback: a.help},
		{Short: "l", Long: "log", Description: "Test every log level", Callback: a.logSelfTest},
		{Short: "d", Long: "die", Description: "Test fatal termination", Callback: a.die},
		{Short: "p", Long: "panic", Description: "Test fatal termination through a failed condition", Callback: a.triggerPanic},
		{Short: "v", Long: "level", Description: "Set the log level by name or number", ExpectsValue: true, Callback: a.setLevel},
		{Short: "i", Long: "indent", Description: "Set the log indentation in spaces", ExpectsValue: true, Callback: a.setIndent},
		{Short: "c", Long: "config", Description: "Load a TOML configuration file", ExpectsValue: true, Callback: a.loadConfig},
		{Short: "o", Long: "output", Description: "Write this help text to a file", ExpectsValue: true, Callback: a.writeHelp},
		{Short: "s", Long: "sleep", Description: "Sleep for the given number of nanoseconds", ExpectsValue: true, Callback: a.sleep},
	}
	return a
}

// Bundles returns the flag table in match order.
func (a *App) Bundles() []args.Bundle {
	return a.bundles
}

// Config returns the configuration currently in effect.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Run dispatches argv, whose first element is the program name. Flags run
// in the order given; the first failing flag stops the run.
func (a *App) Run(argv []string) error {
	if len(argv) < 2 {
		a.log.Debugf("No arguments given, try %s --help", programName(argv))
		return nil
	}
	return a.dispatcher.Dispatch(argv, a.bundles, a.onFailure)
}

func (a *App) onFailure(token string) error {
	a.printHelp()
	return errors.NewArgumentError(fmt.Sprintf("could not dispatch %s", token), nil)
}

func (a *App) title() string {
	if a.cfg.Help != nil && a.cfg.Help.Title != "" {
		return a.cfg.Help.Title
	}
	return config.DefaultTitle
}

func programName(argv []string) string {
	if len(argv) == 0 {
		return "jutil"
	}
	return argv[0]
}
