// Package scanner enumerates subject and session folders across the
// project's storage roots.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist. Scans treat
	// this as an empty contribution, not a failure: a storage root may not
	// exist yet, e.g. before the first sync.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the
	// directory. Unlike a missing root this is fatal: an unreadable root is
	// a configuration problem.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ScanIdentifiers lists the immediate child directories at relPath under
// each given root, keeps those whose name begins with "<prefix>-", and
// returns the union de-duplicated by literal name, sorted for
// deterministic output.
//
// Empty root entries and roots (or relPaths) that do not exist contribute
// nothing. The result is recomputed from current filesystem contents on
// every call; nothing is cached, since either root may change between
// calls.
func ScanIdentifiers(roots []string, relPath string, prefix string) ([]string, error) {
	set := make(map[string]struct{})

	for _, root := range roots {
		if root == "" {
			continue
		}
		folders, err := listFolders(filepath.Join(root, relPath), prefix)
		if err != nil {
			if scanErr, ok := err.(*ScanError); ok && scanErr.Type == DirectoryNotFound {
				continue
			}
			return nil, err
		}
		for _, name := range folders {
			set[name] = struct{}{}
		}
	}

	merged := make([]string, 0, len(set))
	for name := range set {
		merged = append(merged, name)
	}
	sort.Strings(merged)
	return merged, nil
}

// listFolders returns the names of the immediate child directories of dir
// whose name begins with "<prefix>-".
func listFolders(dir string, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: dir, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: dir, Err: err}
		}
		// A plain file sitting where a folder is expected contributes
		// nothing, same as a missing path.
		return nil, &ScanError{Type: DirectoryNotFound, Path: dir, Err: err}
	}

	var folders []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix+"-") {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}
