// Package project ties configuration, folder scanning, numbering and
// consistency checking together into the operations the CLI exposes.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"datashuttle/internal/alerts"
	"datashuttle/internal/config"
	"datashuttle/internal/consistency"
	"datashuttle/internal/names"
	"datashuttle/internal/numbering"
	"datashuttle/internal/scanner"
)

// Project exposes the naming and validation operations for one configured
// project. Every operation recomputes from current filesystem contents;
// no scan results are held between calls, since either storage root may
// change underneath us at any time.
type Project struct {
	cfg *config.ProjectConfig
	log zerolog.Logger
}

// New creates a Project over a validated configuration.
func New(cfg *config.ProjectConfig) *Project {
	return &Project{
		cfg: cfg,
		log: log.With().Str("project", cfg.ProjectName).Logger(),
	}
}

// Config returns the project configuration.
func (p *Project) Config() *config.ProjectConfig {
	return p.cfg
}

// FormatSubNames normalizes raw subject names to the naming convention and
// rejects batches with colliding integer ids.
func (p *Project) FormatSubNames(raw interface{}) ([]string, error) {
	return names.CheckAndFormatNames(raw, p.cfg.SubPrefix)
}

// FormatSesNames normalizes raw session names to the naming convention and
// rejects batches with colliding integer ids.
func (p *Project) FormatSesNames(raw interface{}) ([]string, error) {
	return names.CheckAndFormatNames(raw, p.cfg.SesPrefix)
}

// GetNextSubNumber scans the subject folders of both storage roots and
// suggests the next unused subject number.
func (p *Project) GetNextSubNumber() (numbering.Result, error) {
	subNames, err := scanner.ScanIdentifiers(p.cfg.Roots(), p.cfg.TopLevelFolder, p.cfg.SubPrefix)
	if err != nil {
		return numbering.Result{}, err
	}
	p.log.Debug().Int("subjects", len(subNames)).Msg("scanned subject folders")

	return numbering.NextNumber(subNames, p.cfg.SubPrefix), nil
}

// GetNextSesNumber scans the session folders under one subject, merged
// across both storage roots, and suggests the next unused session number.
// The subject may be given with or without its prefix.
func (p *Project) GetNextSesNumber(subName string) (numbering.Result, error) {
	formatted, err := names.FormatNames([]string{subName}, p.cfg.SubPrefix)
	if err != nil {
		return numbering.Result{}, err
	}
	subFolder := formatted[0]

	sesNames, err := scanner.ScanIdentifiers(
		p.cfg.Roots(),
		filepath.Join(p.cfg.TopLevelFolder, subFolder),
		p.cfg.SesPrefix,
	)
	if err != nil {
		return numbering.Result{}, fmt.Errorf("scanning sessions of %s: %w", subFolder, err)
	}
	p.log.Debug().Str("subject", subFolder).Int("sessions", len(sesNames)).Msg("scanned session folders")

	return numbering.NextNumber(sesNames, p.cfg.SesPrefix), nil
}

// WarnOnInconsistentValueLengths checks the whole project, both storage
// roots included, for mixed zero-padding widths on the subject and session
// keys. The returned warnings are non-fatal.
func (p *Project) WarnOnInconsistentValueLengths() ([]alerts.Warning, error) {
	warnings, err := consistency.CheckValueLengths(p.cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		p.log.Warn().Str("key", w.Key).Msg(w.Message)
	}
	return warnings, nil
}
