package args

import "strings"

// Callback receives the flag's value, or the flag token itself when the
// bundle expects no value. A non-nil error stops the scan.
type Callback func(value string) error

// FailureFunc receives a token that could not be dispatched. A non-nil
// error stops the scan.
type FailureFunc func(token string) error

// Bundle declares one recognized flag. Bundles are read-only to the
// dispatcher and are matched in declaration order.
type Bundle struct {
	Short        string
	Long         string
	Description  string
	ExpectsValue bool
	Callback     Callback
}

// Matches reports whether token selects b. "--x" is compared to Long and
// "-x" to Short; tokens shorter than two characters and empty forms never
// match.
func Matches(token string, b Bundle) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	if strings.HasPrefix(token, "--") && b.Long != "" && token[2:] == b.Long {
		return true
	}
	return b.Short != "" && token[1:] == b.Short
}

func find(token string, bundles []Bundle) (Bundle, bool) {
	for _, b := range bundles {
		if Matches(token, b) {
			return b, true
		}
	}
	return Bundle{}, false
}
