package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"human/internal/errors"
)

// scale names a power of one thousand
type scale struct {
	name  string
	power int
}

// scales is indexed by the number of three digit groups in a number, so a
// seven digit number (three groups) reads in millions. Short scale only.
var scales = map[int]scale{
	2:  {"thousand", 3},
	3:  {"million", 6},
	4:  {"billion", 9},
	5:  {"trillion", 12},
	6:  {"quadrillion", 15},
	7:  {"quintillion", 18},
	8:  {"sextillion", 21},
	9:  {"septillion", 24},
	10: {"octillion", 27},
	11: {"nonillion", 30},
	12: {"decillion", 33},
}

const maxScaleGroups = 12

var (
	plainNumberPattern = regexp.MustCompile(`^[1-9][0-9]*$`)
	delimitedPatterns  = map[string]*regexp.Regexp{
		",": regexp.MustCompile(`^[1-9][0-9]{0,2}(,[0-9]{3})+$`),
		".": regexp.MustCompile(`^[1-9][0-9]{0,2}(\.[0-9]{3})+$`),
		" ": regexp.MustCompile(`^[1-9][0-9]{0,2}( [0-9]{3})+$`),
	}
	numberWordPattern = regexp.MustCompile(`(?i)^([0-9]+)(?:\.([0-9]+))?\s+([a-z]+)$`)
)

// NumberWord renders large numbers with the word for their greatest power,
// 1500000 <-> 1.5 million
type NumberWord struct{}

// NewNumberWord constructs a NumberWord handler
func NewNumberWord() *NumberWord {
	return &NumberWord{}
}

func (n *NumberWord) Name() string { return "numword" }

func (n *NumberWord) Description() string {
	return "Name the greatest power of a number (1500000 <-> 1.5 million)"
}

// CanParseIntoHuman accepts plain digits or digits delimited consistently by
// ',', '.' or ' ', from one thousand up to the decillions.
func (n *NumberWord) CanParseIntoHuman(s string) bool {
	digits, ok := stripDelimiters(s)
	if !ok {
		return false
	}
	return len(digits) >= 4 && len(digits) <= 3*maxScaleGroups
}

// CanParseFromHuman accepts "<number>[.<fraction>] <scale word>"
func (n *NumberWord) CanParseFromHuman(s string) bool {
	_, _, _, ok := splitNumberWord(s)
	return ok
}

// DoIntoHuman keeps the leading group and rounds the next group to one
// decimal place. Rounding carries into the leading group and, from 999.95
// upwards, into the next scale. Decillion is the largest scale, so values
// from 999.95 decillion read "1000 decillion".
func (n *NumberWord) DoIntoHuman(s string) (string, error) {
	if !n.CanParseIntoHuman(s) {
		return "", errors.NewInvalidInputError(s, "not a number between one thousand and the decillions")
	}
	digits, _ := stripDelimiters(s)

	groups := (len(digits) + 2) / 3
	leadLen := len(digits) - 3*(groups-1)
	lead, err := strconv.Atoi(digits[:leadLen])
	if err != nil {
		return "", errors.NewHumanError(errors.InternalError, "leading group is not numeric", err).WithInput(s)
	}
	next, err := strconv.Atoi(digits[leadLen : leadLen+3])
	if err != nil {
		return "", errors.NewHumanError(errors.InternalError, "second group is not numeric", err).WithInput(s)
	}

	decimal := (next + 50) / 100
	if decimal == 10 {
		lead++
		decimal = 0
	}
	if lead == 1000 && groups < maxScaleGroups {
		lead = 1
		groups++
	}

	var out strings.Builder
	out.WriteString(strconv.Itoa(lead))
	if decimal > 0 {
		out.WriteString("." + strconv.Itoa(decimal))
	}
	out.WriteString(" " + scales[groups].name)
	return out.String(), nil
}

// DoFromHuman multiplies the number by its scale with an exact decimal shift
func (n *NumberWord) DoFromHuman(s string) (string, error) {
	whole, fraction, sc, ok := splitNumberWord(s)
	if !ok {
		return "", errors.NewInvalidInputError(s, "expected a number followed by a scale word such as million")
	}
	if len(fraction) > sc.power {
		return "", errors.NewInvalidInputError(s, "more decimal places than the "+sc.name+" scale can hold")
	}

	digits := whole + fraction + strings.Repeat("0", sc.power-len(fraction))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", nil
	}
	return digits, nil
}

// stripDelimiters returns the bare digits of a plain or consistently
// delimited number
func stripDelimiters(s string) (string, bool) {
	if plainNumberPattern.MatchString(s) {
		return s, true
	}
	for sep, pattern := range delimitedPatterns {
		if pattern.MatchString(s) {
			return strings.ReplaceAll(s, sep, ""), true
		}
	}
	return "", false
}

func splitNumberWord(s string) (whole, fraction string, sc scale, ok bool) {
	m := numberWordPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", "", scale{}, false
	}
	word := strings.ToLower(m[3])
	for _, candidate := range scales {
		if candidate.name == word {
			return m[1], m[2], candidate, true
		}
	}
	return "", "", scale{}, false
}
