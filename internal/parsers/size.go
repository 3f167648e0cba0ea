package parsers

import (
	"regexp"
	"strconv"

	"github.com/dustin/go-humanize"

	"human/internal/errors"
)

// Units selects the unit system used by Size
type Units string

const (
	// UnitsSI uses powers of 1000: kB, MB, GB, ...
	UnitsSI Units = "si"
	// UnitsIEC uses powers of 1024: KiB, MiB, GiB, ...
	UnitsIEC Units = "iec"
)

// ParseUnits maps a config or flag value to Units. Anything unknown falls
// back to IEC.
func ParseUnits(s string) Units {
	if Units(s) == UnitsSI {
		return UnitsSI
	}
	return UnitsIEC
}

// sizeSuffixPattern requires a unit after the number so that bare digits
// are never mistaken for a human size
var sizeSuffixPattern = regexp.MustCompile(`(?i)^[0-9]+(\.[0-9]+)?\s*[a-z]+$`)

// Size converts byte counts to and from unit suffixed sizes,
// 1048576 <-> 1.0 MiB
type Size struct {
	units Units
}

// NewSize constructs a Size handler for the given unit system
func NewSize(units Units) *Size {
	if units != UnitsSI {
		units = UnitsIEC
	}
	return &Size{units: units}
}

func (sz *Size) Name() string { return "size" }

func (sz *Size) Description() string {
	if sz.units == UnitsSI {
		return "Byte counts with SI units (1000000 <-> 1.0 MB)"
	}
	return "Byte counts with IEC units (1048576 <-> 1.0 MiB)"
}

// Units returns the unit system of this handler
func (sz *Size) Units() Units { return sz.units }

// CanParseIntoHuman accepts a positive byte count without leading zeros
// that fits in 64 bits
func (sz *Size) CanParseIntoHuman(s string) bool {
	if !plainNumberPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// CanParseFromHuman accepts a number followed by a known unit suffix, with or
// without a space in between (10MB, 1.5 KiB).
func (sz *Size) CanParseFromHuman(s string) bool {
	if !sizeSuffixPattern.MatchString(s) {
		return false
	}
	_, err := humanize.ParseBytes(s)
	return err == nil
}

func (sz *Size) DoIntoHuman(s string) (string, error) {
	if !sz.CanParseIntoHuman(s) {
		return "", errors.NewInvalidInputError(s, "not a byte count")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", errors.NewHumanError(errors.InvalidInput, "byte count out of range", err).WithInput(s)
	}
	if sz.units == UnitsSI {
		return humanize.Bytes(n), nil
	}
	return humanize.IBytes(n), nil
}

func (sz *Size) DoFromHuman(s string) (string, error) {
	if !sizeSuffixPattern.MatchString(s) {
		return "", errors.NewInvalidInputError(s, "expected a number followed by a unit such as MiB")
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return "", errors.NewHumanError(errors.InvalidInput, "unknown size", err).WithInput(s)
	}
	return strconv.FormatUint(n, 10), nil
}
