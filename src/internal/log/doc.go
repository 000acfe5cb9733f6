// Package log provides leveled, coloured console logging for jutil hosts.
//
// Messages are gated by a threshold and written with a fixed-width tag:
//
//   - PROOF   [PRF] cyan, stdout
//   - DEBUG   [DBG] blue, stdout
//   - WARN    [WRN] yellow, stdout
//   - MESSAGE [MSG] magenta, stdout
//   - RAW     no tag, written verbatim to stdout
//   - ERROR   [ERR] red, stderr, never gated
//   - DEATH   [DIE file:line] red, stderr, never gated
//
// A level is written when it is at or above the threshold; higher levels are
// more severe. The default threshold is DEBUG.
//
// # Example Usage
//
//	logger := log.New()
//	logger.Messagef("Loaded %d entries", n)
//
//	logger.SetIndent(4)
//	logger.Rawf("indented by four spaces\n")
//	logger.ResetIndent()
//
// Fatal errors do not exit on their own. They print and return an error
// that the host turns into an exit status at the top of main:
//
//	if err := run(logger); err != nil {
//	    os.Exit(errors.ExitCode(err)) // 1
//	}
//
//	func run(logger *log.Logger) error {
//	    f, err := os.Open(path)
//	    if err != nil {
//	        return logger.FatalErrf(err, "Could not open %s", path)
//	    }
//	    ...
//	}
//
// Every Logger owns its state, so tests can create as many as they need.
package log
