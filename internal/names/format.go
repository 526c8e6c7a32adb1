package names

import "strings"

// FormatNames normalizes a batch of raw names to the folder naming
// convention for the given prefix.
//
// raw must be an ordered sequence of strings: either a []string, or a
// []interface{} whose elements are all strings (the shape produced by
// decoded config and scripting front ends). Anything else, including a
// single bare string, fails with InvalidInputType before any per-element
// processing.
//
// Each element already starting with "<prefix>-" passes through unchanged;
// otherwise "<prefix>-" is prepended. Output order matches input order
// exactly; no sorting and no de-duplication.
func FormatNames(raw interface{}, prefix string) ([]string, error) {
	rawNames, ok := asStringSlice(raw)
	if !ok {
		return nil, &NameError{Type: InvalidInputType, Prefix: prefix}
	}

	formatted := make([]string, len(rawNames))
	for i, name := range rawNames {
		if strings.HasPrefix(name, prefix+"-") {
			formatted[i] = name
		} else {
			formatted[i] = prefix + "-" + name
		}
	}
	return formatted, nil
}

// CheckAndFormatNames formats a batch of raw names and then verifies that
// no two names share an integer id. The comparison is on integer id, not
// the literal string, so "3" and "sub-03" collide. Names with no
// extractable digit run carry no id and are skipped by the check.
func CheckAndFormatNames(raw interface{}, prefix string) ([]string, error) {
	formatted, err := FormatNames(raw, prefix)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	for _, name := range formatted {
		parsed, ok := Parse(name, prefix)
		if !ok {
			continue
		}
		if seen[parsed.IntegerID] {
			return nil, &NameError{Type: DuplicateID, Prefix: prefix}
		}
		seen[parsed.IntegerID] = true
	}
	return formatted, nil
}

// asStringSlice coerces raw into a []string if it is an ordered sequence
// of strings. Mixed or nested sequences are rejected.
func asStringSlice(raw interface{}) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
