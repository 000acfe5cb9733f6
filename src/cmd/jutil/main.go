package main

import (
	"os"

	"github.com/jutil-go/jutil/src/internal/commands"
	"github.com/jutil-go/jutil/src/internal/errors"
	"github.com/jutil-go/jutil/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	os.Exit(errors.ExitCode(run(os.Args)))
}

// run is main without the exit, so the exit status has one source.
func run(argv []string) error {
	logger := log.New()
	logger.Prooff("jutil %s (commit %s, built %s)", version, commit, date)

	return commands.NewApp(logger).Run(argv)
}
