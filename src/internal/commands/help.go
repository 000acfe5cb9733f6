package commands

import (
	"bytes"
	"path/filepath"

	"github.com/jutil-go/jutil/src/internal/errors"
	"github.com/jutil-go/jutil/src/internal/utils"
)

func (a *App) help(string) error {
	a.printHelp()
	return errors.NewUsageError("help requested")
}

func (a *App) printHelp() {
	a.dispatcher.PrintTitle(a.title())
	a.dispatcher.PrintBundles(a.bundles)
}

// writeHelp renders the help text into path. The parent directory is
// created when missing. Filesystem failures are fatal.
func (a *App) writeHelp(path string) error {
	if path == "" {
		return errors.NewArgumentError("empty output path", nil)
	}

	dir := filepath.Dir(path)
	if err := utils.MkdirIfNotExists(dir); err != nil {
		return a.log.FatalErrf(err, "Could not create directory %s", dir)
	}

	var buf bytes.Buffer
	if err := a.dispatcher.WriteHelp(&buf, a.title(), a.bundles); err != nil {
		return errors.NewInternalError("failed to render help", err)
	}
	if err := utils.WriteBinary(path, buf.Bytes()); err != nil {
		return a.log.FatalErrf(err, "Could not write help to %s", path)
	}

	a.log.Messagef("Help written to %s (%d bytes)", path, buf.Len())
	return nil
}
