package watcher

import "path/filepath"

// DefaultIgnorePatterns returns the default patterns for folder names that
// should never trigger a re-check.
func DefaultIgnorePatterns() []string {
	return []string{
		".*",        // hidden folders (.git, .datashuttle, editor state)
		"*.tmp",     // scratch folders from partial syncs
		"*.partial", // rsync-style partial transfer folders
		"~*",        // editor backup folders
	}
}

// FolderFilter filters folder names against a set of glob patterns.
type FolderFilter struct {
	patterns []string
}

// NewFolderFilter creates a FolderFilter with the given patterns, falling
// back to the defaults when none are given.
func NewFolderFilter(patterns []string) *FolderFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &FolderFilter{patterns: patterns}
}

// ShouldIgnore checks whether the base name of path matches any ignore
// pattern.
func (f *FolderFilter) ShouldIgnore(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the active ignore patterns.
func (f *FolderFilter) Patterns() []string {
	out := make([]string, len(f.patterns))
	copy(out, f.patterns)
	return out
}
