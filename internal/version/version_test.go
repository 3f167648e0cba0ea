package version

import (
	"strings"
	"testing"
)

func setBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	})
	Version, Commit, BuildDate = version, commit, date
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"unknown commit", "unknown", "0.9.1"},
		{"short commit ignored", "abc", "0.9.1"},
		{"seven chars ignored", "1234567", "0.9.1"},
		{"long commit truncated", "9f8e7d6c5b4a", "0.9.1 (9f8e7d6)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildInfo(t, "0.9.1", tt.commit, "unknown")
			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFull(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef123456", "2024-01-15")

	got := Full()
	for _, part := range []string{"human version 1.2.3", "Commit: abcdef123456", "Built: 2024-01-15"} {
		if !strings.Contains(got, part) {
			t.Errorf("Full() = %q, want to contain %q", got, part)
		}
	}
}

func TestDefaultVersionIsSemver(t *testing.T) {
	if parts := strings.Split(Version, "."); len(parts) != 3 {
		t.Errorf("Version %q doesn't appear to be semver", Version)
	}
}
