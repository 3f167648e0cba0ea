package testutil

import (
	"regexp"
	"strings"
)

var (
	ansiPattern      = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	uuidPattern      = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})`)
)

// NormalizeText makes command output stable for golden comparison:
// color codes are stripped, line endings become \n, trailing spaces are
// trimmed, and UUIDs and RFC 3339 timestamps are replaced by placeholders.
func NormalizeText(s string) string {
	s = ansiPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = uuidPattern.ReplaceAllString(s, "<ID>")
	s = timestampPattern.ReplaceAllString(s, "<TIME>")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
