// Package commands implements the jutil self-test host.
//
// The host owns the flag table and hands it to an args.Dispatcher; each
// flag exercises one part of the library:
//
//   - -h, --help            print the flag table and stop
//   - -l, --log             write one message per severity
//   - -d, --die             fatal termination
//   - -p, --panic           fatal termination through PanicIf
//   - -v, --level <value>   set the log threshold by name or number
//   - -i, --indent <value>  set the log indentation
//   - -c, --config <value>  load a TOML configuration file
//   - -o, --output <value>  write the help text to a file
//   - -s, --sleep <value>   sleep for a number of nanoseconds
//
// # Example Usage
//
//	app := commands.NewApp(log.New())
//	if err := app.Run(os.Args); err != nil {
//	    os.Exit(errors.ExitCode(err))
//	}
//
// Run never exits the process. Help, fatal calls and failed flags come back
// as errors so the caller decides the exit status.
package commands
