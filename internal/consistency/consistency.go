// Package consistency detects project-wide drift in how subject and
// session numbers are zero-padded across both storage roots.
package consistency

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"datashuttle/internal/alerts"
	"datashuttle/internal/config"
	"datashuttle/internal/names"
	"datashuttle/internal/scanner"
)

const warnTemplate = "Inconsistent value lengths for the %s key in the project found. " +
	"It is crucial these are made consistent as soon as possible to avoid " +
	"unexpected behaviour of DataShuttle during data transfer."

// CheckValueLengths scans both storage roots and warns when the same key
// is written with differing zero-padding widths anywhere in the project.
//
// The subject check runs over the merged top-level subject folders of both
// roots. The session check pools every found subject's sessions
// project-wide, across all subjects and both roots, before comparing
// widths; inconsistency is evaluated globally, not per subject. The two
// checks are independent and the subject check always runs first, so a
// project can produce zero, one or two warnings in a fixed order.
//
// Folder names with no extractable digit run never count toward a check,
// so stray non-convention folders cannot trigger false positives.
func CheckValueLengths(cfg *config.ProjectConfig) ([]alerts.Warning, error) {
	roots := cfg.Roots()

	subNames, err := scanner.ScanIdentifiers(roots, cfg.TopLevelFolder, cfg.SubPrefix)
	if err != nil {
		return nil, err
	}

	var warnings []alerts.Warning
	if w, ok := checkKey(subNames, cfg.SubPrefix); ok {
		warnings = append(warnings, w)
	}

	var allSesNames []string
	for _, subName := range subNames {
		sesNames, err := scanner.ScanIdentifiers(roots, filepath.Join(cfg.TopLevelFolder, subName), cfg.SesPrefix)
		if err != nil {
			return nil, err
		}
		allSesNames = append(allSesNames, sesNames...)
	}
	if w, ok := checkKey(allSesNames, cfg.SesPrefix); ok {
		warnings = append(warnings, w)
	}

	log.Debug().
		Int("subjects", len(subNames)).
		Int("sessions", len(allSesNames)).
		Int("warnings", len(warnings)).
		Msg("value length check complete")

	return warnings, nil
}

// checkKey returns a warning for the key when the scanned names carry
// more than one distinct digit-run width.
func checkKey(scannedNames []string, key string) (alerts.Warning, bool) {
	lengths := make(map[int]struct{})
	for _, name := range scannedNames {
		parsed, ok := names.Parse(name, key)
		if !ok {
			continue
		}
		lengths[parsed.ValueLength] = struct{}{}
	}
	if len(lengths) <= 1 {
		return alerts.Warning{}, false
	}
	return alerts.Warningf(alerts.KeyInconsistentLength, warnTemplate, key), true
}
