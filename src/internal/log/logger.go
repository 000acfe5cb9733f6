package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jutil-go/jutil/src/internal/errors"
)

// Leveled is the full operation set of a Logger. Packages that only need a
// subset declare their own narrower interface.
type Leveled interface {
	SetThreshold(level Level) error
	Threshold() Level
	Enabled(level Level) bool
	Logf(level Level, format string, args ...interface{})
	Prooff(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Messagef(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Rawf(format string, args ...interface{})
	GatedRawf(level Level, format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{}) error
	FatalErrf(cause error, format string, args ...interface{}) error
	PanicIf(cond bool, format string, args ...interface{}) error
	SetColor(enabled bool)
	SetIndent(n int)
	Indent() int
	ResetIndent()
}

var _ Leveled = (*Logger)(nil)

// Logger gates messages by severity and writes them with a coloured tag and
// the current indentation. The zero value is not usable; use New.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	color     atomic.Bool
	threshold atomic.Int32
	indent    atomic.Int64

	fatalOnce sync.Once
	fatalErr  error
}

// Option configures a Logger in New.
type Option func(*Logger)

// WithStdout sets the writer used for every level except ERROR and DEATH.
func WithStdout(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.stdout = w
		}
	}
}

// WithStderr sets the writer used for ERROR and DEATH.
func WithStderr(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.stderr = w
		}
	}
}

// WithColor enables or disables ANSI colouring of tags.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		l.color.Store(enabled)
	}
}

// WithThreshold sets the initial threshold. Invalid levels are ignored.
func WithThreshold(level Level) Option {
	return func(l *Logger) {
		if level.Valid() {
			l.threshold.Store(int32(level))
		}
	}
}

// New creates a Logger writing to os.Stdout and os.Stderr with colours on
// and the DEBUG threshold.
func New(opts ...Option) *Logger {
	l := &Logger{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	l.color.Store(true)
	l.threshold.Store(int32(DefaultThreshold))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetThreshold changes the minimum level that is emitted. An out-of-range
// level is reported on the error channel together with the list of valid
// levels, and a configuration error is returned; the threshold is left
// unchanged.
func (l *Logger) SetThreshold(level Level) error {
	if !level.Valid() {
		l.print(LevelError, "", fmt.Sprintf("Invalid log level: %d", level))
		l.print(LevelError, "", fmt.Sprintf("Must be between %d and %d", levelMin+1, levelMax-1))
		for _, valid := range Levels() {
			l.print(LevelRaw, "", fmt.Sprintf("  %s=%d\n", valid, valid))
		}
		return errors.NewConfigError(fmt.Sprintf("invalid log level: %d", level), nil)
	}

	l.threshold.Store(int32(level))
	l.Debugf("Log level set to %s", level)
	return nil
}

// Threshold returns the current threshold.
func (l *Logger) Threshold() Level {
	return Level(l.threshold.Load())
}

// Enabled reports whether a message at level would be written. ERROR and
// DEATH are always enabled.
func (l *Logger) Enabled(level Level) bool {
	if level == LevelError || level == LevelDeath {
		return true
	}
	return level >= l.Threshold()
}

// Logf writes a formatted message at level if the level is enabled. A
// DEATH message written here is only printed; use Fatalf to also get the
// error that ends the program.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	site := ""
	if level == LevelDeath {
		site = callSite(2)
	}
	l.print(level, site, fmt.Sprintf(format, args...))
}

// Prooff logs a PROOF message.
func (l *Logger) Prooff(format string, args ...interface{}) {
	l.logf(LevelProof, format, args...)
}

// Debugf logs a DEBUG message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Warnf logs a WARN message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Messagef logs a MESSAGE message.
func (l *Logger) Messagef(format string, args ...interface{}) {
	l.logf(LevelMessage, format, args...)
}

// Infof is Messagef.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelMessage, format, args...)
}

// Rawf writes the formatted text untagged and without an added newline.
func (l *Logger) Rawf(format string, args ...interface{}) {
	l.logf(LevelRaw, format, args...)
}

// GatedRawf writes raw text only when level passes the threshold.
func (l *Logger) GatedRawf(level Level, format string, args ...interface{}) {
	if l.Enabled(level) {
		l.logf(LevelRaw, format, args...)
	}
}

// Errorf logs an ERROR message to stderr regardless of the threshold.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// SetColor enables or disables ANSI colouring of tags.
func (l *Logger) SetColor(enabled bool) {
	l.color.Store(enabled)
}

// SetIndent sets the number of spaces written between the tag and the
// message. Negative values are treated as zero.
func (l *Logger) SetIndent(n int) {
	if n < 0 {
		n = 0
	}
	l.indent.Store(int64(n))
}

// Indent returns the current indentation width.
func (l *Logger) Indent() int {
	return int(l.indent.Load())
}

// ResetIndent sets the indentation width back to zero.
func (l *Logger) ResetIndent() {
	l.indent.Store(0)
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.print(level, "", fmt.Sprintf(format, args...))
}

// print renders and writes a message without consulting the threshold.
func (l *Logger) print(level Level, site, msg string) {
	line := l.render(level, site, msg)

	w := l.stdout
	if level == LevelError || level == LevelDeath {
		w = l.stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(w, line)
}

func (l *Logger) render(level Level, site, msg string) string {
	var b strings.Builder
	b.Grow(len(msg) + 32)

	spaces := strings.Repeat(" ", l.Indent())
	if level == LevelRaw {
		b.WriteString(spaces)
		b.WriteString(msg)
		return b.String()
	}

	tag, color := level.style()
	if level == LevelDeath {
		b.WriteByte('\n')
		if site != "" {
			tag = "[DIE " + site + "]"
		}
	}

	colored := l.color.Load()
	if colored {
		b.WriteString(color)
	}
	b.WriteString(tag)
	if colored {
		b.WriteString(colorReset)
	}
	b.WriteByte(' ')
	b.WriteString(spaces)
	b.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}
