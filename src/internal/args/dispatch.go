package args

import (
	"github.com/valyala/fasttemplate"
)

// Logger is the part of log.Logger the dispatcher writes through.
type Logger interface {
	Errorf(format string, args ...interface{})
	Rawf(format string, args ...interface{})
	SetIndent(n int)
	ResetIndent()
}

// Dispatcher runs bundle callbacks for command-line tokens and renders
// help text for bundle tables.
type Dispatcher struct {
	log Logger

	flagTmpl *fasttemplate.Template
	descTmpl *fasttemplate.Template
}

// NewDispatcher creates a Dispatcher that reports through logger and uses
// the default help templates.
func NewDispatcher(logger Logger) *Dispatcher {
	return &Dispatcher{
		log:      logger,
		flagTmpl: fasttemplate.New(DefaultFlagTemplate, tagStart, tagEnd),
		descTmpl: fasttemplate.New(DefaultDescriptionTemplate, tagStart, tagEnd),
	}
}

// Dispatch scans tokens[1:] once, in order, and runs the callback of the
// first bundle matching each token. A bundle that expects a value consumes
// the following token. Unknown tokens and missing values are reported and
// passed to onFailure, after which scanning continues. The first error
// returned by a callback or by onFailure stops the scan and is returned.
func (d *Dispatcher) Dispatch(tokens []string, bundles []Bundle, onFailure FailureFunc) error {
	for i := 1; i < len(tokens); i++ {
		token := tokens[i]

		b, ok := find(token, bundles)
		if !ok {
			d.log.Errorf("Unknown argument: %s", token)
			if err := fail(onFailure, token); err != nil {
				return err
			}
			continue
		}

		value := token
		if b.ExpectsValue {
			if i+1 >= len(tokens) {
				d.log.Errorf("Argument %s expects a pairing value", token)
				if err := fail(onFailure, token); err != nil {
					return err
				}
				continue
			}
			i++
			value = tokens[i]
		}

		if b.Callback == nil {
			continue
		}
		if err := b.Callback(value); err != nil {
			return err
		}
	}
	return nil
}

func fail(onFailure FailureFunc, token string) error {
	if onFailure == nil {
		return nil
	}
	return onFailure(token)
}
