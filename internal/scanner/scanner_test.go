package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func makeFolders(t *testing.T, root string, relPaths ...string) {
	t.Helper()
	for _, relPath := range relPaths {
		if err := os.MkdirAll(filepath.Join(root, relPath), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", relPath, err)
		}
	}
}

func TestScanIdentifiersSingleRoot(t *testing.T) {
	local := t.TempDir()
	makeFolders(t, local, "rawdata/sub-01", "rawdata/sub-02", "rawdata/sub-04")

	got, err := ScanIdentifiers([]string{local}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	want := []string{"sub-01", "sub-02", "sub-04"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanIdentifiersUnionAcrossRoots(t *testing.T) {
	local := t.TempDir()
	central := t.TempDir()
	makeFolders(t, local, "rawdata/sub-01", "rawdata/sub-02")
	makeFolders(t, central, "rawdata/sub-02", "rawdata/sub-03")

	got, err := ScanIdentifiers([]string{local, central}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	// sub-02 exists in both roots but appears once.
	want := []string{"sub-01", "sub-02", "sub-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanIdentifiersFiltersNonMatching(t *testing.T) {
	local := t.TempDir()
	makeFolders(t, local, "rawdata/sub-01", "rawdata/ses-01", "rawdata/derivatives", "rawdata/.hidden")
	// A plain file matching the prefix is not a folder.
	if err := os.WriteFile(filepath.Join(local, "rawdata", "sub-02"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ScanIdentifiers([]string{local}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	want := []string{"sub-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanIdentifiersMissingRoots(t *testing.T) {
	local := t.TempDir()
	makeFolders(t, local, "rawdata/sub-01")

	// A root that does not exist contributes nothing rather than failing.
	got, err := ScanIdentifiers([]string{local, filepath.Join(local, "no-such-root")}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	want := []string{"sub-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Empty root entries are skipped.
	got, err = ScanIdentifiers([]string{local, ""}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// All roots missing yields an empty, non-nil-safe result.
	got, err = ScanIdentifiers([]string{filepath.Join(local, "gone")}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestScanIdentifiersMissingRelPath(t *testing.T) {
	local := t.TempDir()

	got, err := ScanIdentifiers([]string{local}, "rawdata", "sub")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result for missing relPath, got %v", got)
	}
}

func TestScanIdentifiersSessionScope(t *testing.T) {
	local := t.TempDir()
	central := t.TempDir()
	makeFolders(t, local, "rawdata/sub-01/ses-01", "rawdata/sub-01/ses-02")
	makeFolders(t, central, "rawdata/sub-01/ses-03")

	got, err := ScanIdentifiers([]string{local, central}, filepath.Join("rawdata", "sub-01"), "ses")
	if err != nil {
		t.Fatalf("ScanIdentifiers failed: %v", err)
	}
	want := []string{"ses-01", "ses-02", "ses-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
