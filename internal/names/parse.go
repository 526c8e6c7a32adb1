// Package names implements the subject/session identifier grammar and
// batch name formatting for DataShuttle.
//
// An identifier has the form <prefix>-<digits>[_<tag>]* where prefix is
// "sub" or "ses", digits may carry leading zeros, and any number of
// underscore-separated tags may follow (e.g. "sub-001_date-20240115").
package names

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingDigits matches the maximal run of decimal digits at the start
// of a string.
var leadingDigits = regexp.MustCompile(`^[0-9]+`)

// Parsed is the structured result of parsing one identifier token.
type Parsed struct {
	HasPrefix   bool // token started with "<prefix>-"
	IntegerID   int  // numeric value of the digit run, leading zeros discarded
	ValueLength int  // character count of the digit run as written
}

// Parse extracts the integer id and value length from a single token.
//
// A token starting with "<prefix>-" must carry at least one digit
// immediately after the separator. A token without the prefix lead is
// treated as a bare digit-string candidate so unprefixed user input can
// still be normalized. The digit run is the maximal leading run; anything
// after it (tags, separators) is ignored.
//
// The second return value is false when no digit run can be extracted.
func Parse(token string, prefix string) (Parsed, bool) {
	rest := token
	hasPrefix := strings.HasPrefix(token, prefix+"-")
	if hasPrefix {
		rest = token[len(prefix)+1:]
	}

	digits := leadingDigits.FindString(rest)
	if digits == "" {
		return Parsed{}, false
	}

	id, err := strconv.Atoi(digits)
	if err != nil {
		// Digit run too long to represent; treat as unparseable.
		return Parsed{}, false
	}

	return Parsed{
		HasPrefix:   hasPrefix,
		IntegerID:   id,
		ValueLength: len(digits),
	}, true
}
