package commands

import (
	"github.com/jutil-go/jutil/src/internal/log"
)

func (a *App) logSelfTest(string) error {
	a.log.Prooff("This is a proof message")
	a.log.Debugf("This is a debug message")
	a.log.Warnf("This is a warning message")
	a.log.Messagef("This is a regular message")
	a.log.Rawf("This is a raw message\n")
	a.log.Errorf("This is an error message")

	a.log.SetIndent(4)
	a.log.Messagef("This message is indented by %d spaces", a.log.Indent())
	a.log.ResetIndent()

	threshold := a.log.Threshold()
	for _, level := range log.Levels() {
		a.log.GatedRawf(level, "Raw output at %s passes the %s threshold\n", level, threshold)
	}
	return nil
}

func (a *App) die(token string) error {
	return a.log.Fatalf("Exit requested by %s", token)
}

func (a *App) triggerPanic(token string) error {
	return a.log.PanicIf(token != "", "Panic requested by %s", token)
}
