// Package alerts defines the non-fatal warning records produced by project scans.
//
// Warnings travel alongside normal results rather than through the error
// path: organic drift in a long-lived project tree (numbering gaps, padding
// drift) must never block folder creation or number suggestion. Only
// structural misuse of the API is raised as an error.
package alerts

import "fmt"

// Warning keys, naming the check that produced the warning.
const (
	KeySkippedNumber      = "skipped-number"
	KeyInconsistentLength = "inconsistent-value-length"
)

// Warning is a single non-fatal diagnostic with a user-facing message.
type Warning struct {
	Key     string // which check fired, one of the Key* constants
	Message string // exact text shown to the user
}

// Warningf creates a Warning with a formatted message.
func Warningf(key string, format string, args ...interface{}) Warning {
	return Warning{
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

// Messages extracts the message text of each warning, in order.
func Messages(warnings []Warning) []string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return msgs
}
