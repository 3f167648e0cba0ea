// Package parsers implements the format handlers that human uses to move
// values between their plain machine form and a human friendly form.
//
// Every handler implements Parser. A caller asks the capability predicates
// (CanParseIntoHuman / CanParseFromHuman) first and only then invokes the
// matching transformation. A handler that answers true for an input must not
// fail on that same input; transformations called on input that fails the
// predicate return an INVALID_INPUT error instead of a made up value.
//
// Handlers are stateless and safe to share. The Registry holds an ordered
// list of them and dispatches with a first-match-wins policy.
package parsers

import (
	"fmt"
)

// Direction selects which way a conversion goes
type Direction string

const (
	// IntoHuman converts plain machine input (1000000) into human form (1,000,000)
	IntoHuman Direction = "into-human"
	// FromHuman converts human form input back into plain machine form
	FromHuman Direction = "from-human"
)

// Parser is the contract every format handler implements
type Parser interface {
	// Name is the registry key of the handler, e.g. "number"
	Name() string
	// Description is a one line summary used in listings
	Description() string

	// CanParseIntoHuman reports whether s, assumed to be in plain form, can be
	// rendered into human form by this handler. Must be side effect free.
	CanParseIntoHuman(s string) bool
	// CanParseFromHuman reports whether s, assumed to be in human form, can be
	// turned back into plain form by this handler. Must be side effect free.
	CanParseFromHuman(s string) bool

	// DoIntoHuman renders plain input into human form
	DoIntoHuman(s string) (string, error)
	// DoFromHuman turns human form back into plain form
	DoFromHuman(s string) (string, error)
}

// ParseDirection converts a CLI/config string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case IntoHuman, "":
		return IntoHuman, nil
	case FromHuman:
		return FromHuman, nil
	default:
		return "", fmt.Errorf("unknown direction %q (want %s or %s)", s, IntoHuman, FromHuman)
	}
}

// CanParse asks p the predicate that belongs to direction d
func CanParse(p Parser, d Direction, s string) bool {
	if d == FromHuman {
		return p.CanParseFromHuman(s)
	}
	return p.CanParseIntoHuman(s)
}

// Do runs the transformation of p that belongs to direction d
func Do(p Parser, d Direction, s string) (string, error) {
	if d == FromHuman {
		return p.DoFromHuman(s)
	}
	return p.DoIntoHuman(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
