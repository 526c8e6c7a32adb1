package names

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genRawName generates raw user input: bare numbers, zero-padded numbers,
// already-prefixed names, and names with tag suffixes.
func genRawName(prefix string) gopter.Gen {
	genNumber := gen.IntRange(1, 9999).Map(func(n int) string {
		return strconv.Itoa(n)
	})
	return gopter.CombineGens(
		genNumber,
		gen.IntRange(0, 3), // zero padding
		gen.Bool(),         // already prefixed
		gen.Bool(),         // tag suffix
	).Map(func(vals []interface{}) string {
		name := strings.Repeat("0", vals[1].(int)) + vals[0].(string)
		if vals[3].(bool) {
			name += "_date-20240115"
		}
		if vals[2].(bool) {
			name = prefix + "-" + name
		}
		return name
	})
}

func genRawNames(prefix string) gopter.Gen {
	return gen.SliceOfN(8, genRawName(prefix))
}

func TestFormattingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every formatted name carries the prefix exactly once", prop.ForAll(
		func(rawNames []string) bool {
			formatted, err := FormatNames(rawNames, "sub")
			if err != nil {
				t.Logf("FormatNames failed: %v", err)
				return false
			}
			for _, name := range formatted {
				if !strings.HasPrefix(name, "sub-") {
					t.Logf("missing prefix: %q", name)
					return false
				}
				if strings.HasPrefix(strings.TrimPrefix(name, "sub-"), "sub-") {
					t.Logf("doubled prefix: %q", name)
					return false
				}
			}
			return true
		},
		genRawNames("sub"),
	))

	properties.Property("formatting preserves order and length", prop.ForAll(
		func(rawNames []string) bool {
			formatted, err := FormatNames(rawNames, "ses")
			if err != nil {
				return false
			}
			if len(formatted) != len(rawNames) {
				return false
			}
			for i, name := range formatted {
				if !strings.HasSuffix(name, rawNames[i]) {
					t.Logf("element %d reordered or rewritten: %q -> %q", i, rawNames[i], name)
					return false
				}
			}
			return true
		},
		genRawNames("ses"),
	))

	properties.Property("formatting is idempotent", prop.ForAll(
		func(rawNames []string) bool {
			once, err := FormatNames(rawNames, "sub")
			if err != nil {
				return false
			}
			twice, err := FormatNames(once, "sub")
			if err != nil {
				return false
			}
			return reflect.DeepEqual(once, twice)
		},
		genRawNames("sub"),
	))

	properties.TestingRun(t)
}
