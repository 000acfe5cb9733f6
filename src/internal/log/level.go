package log

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jutil-go/jutil/src/internal/errors"
)

// Level is the severity of a log message. Higher values are more severe.
type Level int32

const (
	levelMin Level = iota
	LevelProof
	LevelDebug
	LevelWarn
	LevelMessage
	LevelRaw
	LevelError
	LevelDeath
	levelMax
)

// DefaultThreshold is the threshold of a freshly created Logger.
const DefaultThreshold = LevelDebug

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

var levelTable = [...]struct {
	name  string
	tag   string
	color string
}{
	LevelProof:   {"PROOF", "[PRF]", colorCyan},
	LevelDebug:   {"DEBUG", "[DBG]", colorBlue},
	LevelWarn:    {"WARN", "[WRN]", colorYellow},
	LevelMessage: {"MESSAGE", "[MSG]", colorMagenta},
	LevelRaw:     {"RAW", "", ""},
	LevelError:   {"ERROR", "[ERR]", colorRed},
	LevelDeath:   {"DEATH", "[DIE]", colorRed},
}

var levelAliases = map[string]Level{
	"trace":   LevelProof,
	"prf":     LevelProof,
	"dbg":     LevelDebug,
	"warning": LevelWarn,
	"wrn":     LevelWarn,
	"info":    LevelMessage,
	"msg":     LevelMessage,
	"err":     LevelError,
	"fatal":   LevelDeath,
	"die":     LevelDeath,
}

// Valid reports whether l lies strictly between the enumeration sentinels.
func (l Level) Valid() bool {
	return l > levelMin && l < levelMax
}

func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN(" + strconv.Itoa(int(l)) + ")"
	}
	return levelTable[l].name
}

func (l Level) style() (tag, color string) {
	if !l.Valid() {
		return "[???]", colorRed
	}
	return levelTable[l].tag, levelTable[l].color
}

// Levels returns every valid level, least severe first.
func Levels() []Level {
	levels := make([]Level, 0, levelMax-levelMin-1)
	for l := levelMin + 1; l < levelMax; l++ {
		levels = append(levels, l)
	}
	return levels
}

// ParseLevel converts a level name, a common alias or a decimal number into
// a Level. Names are case-insensitive.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.ParseInt(name, 10, 32); err == nil || stderrors.Is(err, strconv.ErrRange) {
		l := Level(n)
		if err != nil || !l.Valid() {
			return levelMin, errors.NewParseError(fmt.Sprintf("log level %s out of range", name), err)
		}
		return l, nil
	}
	for _, l := range Levels() {
		if strings.ToLower(levelTable[l].name) == name {
			return l, nil
		}
	}
	if l, ok := levelAliases[name]; ok {
		return l, nil
	}
	return levelMin, errors.NewParseError(fmt.Sprintf("unknown log level %q", s), nil)
}
