// Package testutil provides golden file helpers for tests.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// updateGolden controls whether golden files should be updated.
// Use: go test ./cmd/human -run TestGolden -update
var updateGolden = flag.Bool("update", false, "update golden files")

// ShouldUpdate returns true if golden files should be updated.
func ShouldUpdate() bool {
	return *updateGolden
}

// GoldenPath returns testdata/golden/<name>.golden relative to the test's package
func GoldenPath(name string) string {
	return filepath.Join("testdata", "golden", name+".golden")
}

// CompareGolden compares got against the named golden file, failing with a
// line diff on mismatch. got is normalized first.
// If -update flag is set, updates the golden file instead of comparing.
func CompareGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	normalized := NormalizeText(string(got))
	goldenPath := GoldenPath(name)

	if *updateGolden {
		UpdateGolden(t, goldenPath, []byte(normalized))
		t.Logf("Updated golden: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				goldenPath, normalized, t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	want := strings.Split(string(expected), "\n")
	have := strings.Split(normalized, "\n")
	if diff := cmp.Diff(want, have); diff != "" {
		t.Fatalf("Golden mismatch for %s (-want +got):\n%s\n\nRun with -update to refresh:\n  go test ./... -run %s -update",
			goldenPath, diff, t.Name())
	}
}

// UpdateGolden writes data to path, creating parent directories.
func UpdateGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create golden directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write golden file: %v", err)
	}
}
