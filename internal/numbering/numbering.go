// Package numbering suggests the next free subject or session number from
// a set of scanned folder names.
package numbering

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"datashuttle/internal/alerts"
	"datashuttle/internal/names"
)

// Result holds the advisor's suggestion for one numbering scope.
type Result struct {
	// Next is one greater than the maximum used integer id, or 1 when no
	// ids are in use. The advisor always proposes appending beyond the
	// current maximum, never backfilling a gap.
	Next int
	// Used is the ascending list of integer ids currently in use.
	Used []int
	// Warnings holds the non-fatal skipped-number warning, if any.
	Warnings []alerts.Warning
}

// NextNumber computes the next unused integer id across the scanned folder
// names. Names with no extractable digit run are ignored rather than
// failing the call. Two names resolving to the same integer id ("sub-1"
// and "sub-01") count once.
//
// When the used ids are not consecutive starting at 1, a skipped-number
// warning is attached to the result. The warning text lists the used ids
// with the same wording regardless of whether the scope is subjects or
// sessions. It never blocks the suggestion.
func NextNumber(scannedNames []string, prefix string) Result {
	idSet := make(map[int]struct{})
	for _, name := range scannedNames {
		parsed, ok := names.Parse(name, prefix)
		if !ok {
			log.Debug().Str("name", name).Msg("ignoring folder with no extractable number")
			continue
		}
		idSet[parsed.IntegerID] = struct{}{}
	}

	used := make([]int, 0, len(idSet))
	for id := range idSet {
		used = append(used, id)
	}
	sort.Ints(used)

	result := Result{Next: 1, Used: used}
	if len(used) > 0 {
		result.Next = used[len(used)-1] + 1
	}

	if hasGap(used) {
		result.Warnings = append(result.Warnings, alerts.Warningf(
			alerts.KeySkippedNumber,
			"A subject number has been skipped, currently used subject numbers are: %s",
			formatIDList(used),
		))
	}

	return result
}

// hasGap reports whether the ascending ids are not exactly 1..max.
func hasGap(used []int) bool {
	for i, id := range used {
		if id != i+1 {
			return true
		}
	}
	return false
}

// formatIDList renders ids as a bracketed, comma-separated list,
// e.g. [1, 2, 4].
func formatIDList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
