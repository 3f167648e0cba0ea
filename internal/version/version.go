// Package version holds the release of the human binary.
package version

// Release builds stamp these through the linker:
//
//	go build -ldflags "-X human/internal/version.Commit=$(git rev-parse HEAD) \
//	    -X human/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/human
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the version with a short commit suffix when one was stamped,
// e.g. "0.3.0 (1a2b3c4)"
func Info() string {
	if len(Commit) > 7 && Commit != "unknown" {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full is what "human version" prints
func Full() string {
	return "human version " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
