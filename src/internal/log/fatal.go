package log

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/jutil-go/jutil/src/internal/errors"
)

// Fatalf writes a DEATH message tagged with the caller's file and line and
// returns a FATAL error. The host is expected to exit with
// errors.ExitCode(err) once the error reaches main.
//
// Only the first fatal call on a Logger prints; later or concurrent calls
// return the same error silently.
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	return l.fatal(callSite(2), nil, fmt.Sprintf(format, args...))
}

// FatalErrf is Fatalf with a cause. When the cause wraps an OS errno its
// code, name and description are written after the DEATH message.
func (l *Logger) FatalErrf(cause error, format string, args ...interface{}) error {
	return l.fatal(callSite(2), cause, fmt.Sprintf(format, args...))
}

// PanicIf calls Fatalf when cond is true and returns nil otherwise.
func (l *Logger) PanicIf(cond bool, format string, args ...interface{}) error {
	if !cond {
		return nil
	}
	return l.fatal(callSite(2), nil, fmt.Sprintf(format, args...))
}

func (l *Logger) fatal(site string, cause error, msg string) error {
	l.fatalOnce.Do(func() {
		l.print(LevelDeath, site, msg)
		if errno, ok := errnoOf(cause); ok {
			l.mu.Lock()
			_, _ = fmt.Fprintf(l.stderr, "\nError before death: code %d %s (%s)\n",
				int(errno), unix.ErrnoName(errno), errno.Error())
			l.mu.Unlock()
		}
		l.fatalErr = errors.NewFatalError(strings.TrimRight(msg, "\n"), cause)
	})
	return l.fatalErr
}

func errnoOf(err error) (unix.Errno, bool) {
	var errno unix.Errno
	if err == nil || !stderrors.As(err, &errno) || errno == 0 {
		return 0, false
	}
	return errno, true
}

// callSite returns "file.go:line" for the frame skip levels above it.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???:0"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
