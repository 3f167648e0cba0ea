package parsers

import (
	"regexp"
	"strings"

	"human/internal/errors"
)

const groupSeparator = ','

// humanGroupPattern accepts a correctly comma grouped number: a leading group
// of one to three digits without a leading zero, then full groups of three.
var humanGroupPattern = regexp.MustCompile(`^[1-9][0-9]{0,2}(,[0-9]{3})*$`)

// NumberGroup groups the digits of a non-negative integer by thousands,
// 1000000 <-> 1,000,000
type NumberGroup struct{}

// NewNumberGroup constructs a NumberGroup handler
func NewNumberGroup() *NumberGroup {
	return &NumberGroup{}
}

func (n *NumberGroup) Name() string { return "number" }

func (n *NumberGroup) Description() string {
	return "Group digits by thousands (1000000 <-> 1,000,000)"
}

// CanParseIntoHuman accepts any input whose first character is 1-9.
//
// Empty input and anything starting with '0', including "0" itself, is
// declined: zero has nothing to group and leading zeros are not numbers we
// own.
func (n *NumberGroup) CanParseIntoHuman(s string) bool {
	return s != "" && s[0] >= '1' && s[0] <= '9'
}

// CanParseFromHuman accepts correctly grouped numbers such as "1,000" and
// short numbers that need no grouping such as "999".
func (n *NumberGroup) CanParseFromHuman(s string) bool {
	return humanGroupPattern.MatchString(s)
}

// DoIntoHuman groups s by thousands. Input that starts with 1-9 but is not
// made only of digits ("12af") is reported as INVALID_INPUT.
func (n *NumberGroup) DoIntoHuman(s string) (string, error) {
	if !n.CanParseIntoHuman(s) {
		return "", errors.NewInvalidInputError(s, "number must start with a digit 1-9")
	}
	if !isDigits(s) {
		return "", errors.NewInvalidInputError(s, "number must contain only digits 0-9")
	}
	return groupDigits(s), nil
}

// DoFromHuman validates the grouping of s and strips the separators
func (n *NumberGroup) DoFromHuman(s string) (string, error) {
	if !n.CanParseFromHuman(s) {
		return "", errors.NewInvalidInputError(s, "not a comma grouped number")
	}
	return strings.ReplaceAll(s, string(groupSeparator), ""), nil
}

// groupDigits inserts a separator every three characters counted from the
// right. Characters are appended while scanning right to left and the
// result is reversed at the end.
func groupDigits(s string) string {
	if len(s) < 4 {
		return s
	}

	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	for pos := 0; pos < len(s); pos++ {
		if pos > 0 && pos%3 == 0 {
			out = append(out, groupSeparator)
		}
		out = append(out, s[len(s)-1-pos])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
