package args

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jutil-go/jutil/src/internal/errors"
)

// ParseFloat parses a flag value as a float. Trailing garbage is an error.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NewParseError(fmt.Sprintf("failed to parse float from %q", s), err)
	}
	return v, nil
}

// ParseLong parses a flag value as an integer. The base is taken from the
// prefix: 0x hexadecimal, 0o or a leading 0 octal, 0b binary, otherwise
// decimal.
func ParseLong(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.NewParseError(fmt.Sprintf("failed to parse long integer from %q", s), err)
	}
	return v, nil
}
