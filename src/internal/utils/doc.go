// Package utils provides the small helpers jutil hosts reach for next to
// logging and argument handling.
//
// # Components
//
//   - Files: FileExists, MkdirIfNotExists, WriteBinary
//   - Paths: ResolvePath for paths read from a configuration file
//   - Maths: FloatApproximates with an explicit or default tolerance
//   - Timing: Sleep in nanoseconds and TimestampMicros
//
// Failing file operations return IO errors that keep the underlying
// *os.PathError in their chain, so a host can hand them to
// log.Logger.FatalErrf and get the errno printed.
package utils
