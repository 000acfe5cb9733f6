// Package args matches command-line tokens against a host-declared table of
// flags and invokes the matching callbacks.
//
// A Bundle declares one flag: its short form ("h" for -h), its long form
// ("help" for --help), a description for help output, whether a value must
// follow it, and the callback to run. Tokens are scanned once, left to
// right, starting after the program name. The first bundle that matches a
// token wins. Matching is exact and case sensitive; there is no prefix
// matching and short flags cannot be combined.
//
// Unknown tokens and flags missing their value are reported on the logger's
// error channel and handed to the caller's failure callback. The scan then
// continues with the next token unless the failure callback returns an
// error. Nothing in this package exits the process.
//
// # Example Usage
//
//	bundles := []args.Bundle{
//	    {Short: "h", Long: "help", Description: "Print this help text and exit", Callback: help},
//	    {Short: "v", Long: "level", Description: "Set the log level", ExpectsValue: true, Callback: setLevel},
//	}
//
//	d := args.NewDispatcher(logger)
//	if err := d.Dispatch(os.Args, bundles, onFailure); err != nil {
//	    os.Exit(errors.ExitCode(err))
//	}
package args
