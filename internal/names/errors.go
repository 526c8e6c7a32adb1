package names

import "fmt"

// NameErrorType represents the type of name formatting error.
type NameErrorType string

const (
	// InvalidInputType indicates the raw names argument was not an ordered
	// sequence of strings.
	InvalidInputType NameErrorType = "INVALID_INPUT_TYPE"
	// DuplicateID indicates two names in one batch resolved to the same
	// integer id.
	DuplicateID NameErrorType = "DUPLICATE_ID"
)

// NameError represents a fatal error raised while formatting a name batch.
// Both kinds indicate misuse of the API by the caller, unlike the
// non-fatal warnings produced by folder scans.
type NameError struct {
	Type   NameErrorType
	Prefix string
}

func (e *NameError) Error() string {
	switch e.Type {
	case InvalidInputType:
		return fmt.Sprintf("Ensure %s names are a list of strings.", e.Prefix)
	case DuplicateID:
		return fmt.Sprintf("%s names must all have unique integer ids after the %s prefix.", e.Prefix, e.Prefix)
	default:
		return fmt.Sprintf("name error for the %s prefix", e.Prefix)
	}
}
