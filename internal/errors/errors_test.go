package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewHumanError(t *testing.T) {
	cause := errors.New("underlying error")

	err := NewHumanError(ConfigInvalid, "bad size.units", cause)

	if err.Code != ConfigInvalid {
		t.Errorf("Code = %v, want %v", err.Code, ConfigInvalid)
	}
	if err.Message != "bad size.units" {
		t.Errorf("Message = %q, want %q", err.Message, "bad size.units")
	}
	if len(err.SuggestedFixes) != 2 {
		t.Errorf("len(SuggestedFixes) = %d, want 2", len(err.SuggestedFixes))
	}
}

func TestHumanError_Error(t *testing.T) {
	tests := []struct {
		name      string
		err       *HumanError
		wantParts []string
	}{
		{
			name:      "with cause",
			err:       NewHumanError(HistoryUnavailable, "cannot open history", errors.New("disk full")),
			wantParts: []string{"HISTORY_UNAVAILABLE", "cannot open history", "disk full"},
		},
		{
			name:      "with input",
			err:       NewInvalidInputError("12af", "not a number"),
			wantParts: []string{"INVALID_INPUT", "not a number", `"12af"`},
		},
		{
			name:      "without cause",
			err:       NewHumanError(UnknownFormat, "unknown format 'cron'", nil),
			wantParts: []string{"UNKNOWN_FORMAT", "unknown format 'cron'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestHumanError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewHumanError(InternalError, "something went wrong", cause)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}

	errNoCause := NewHumanError(NoMatch, "nothing matched", nil)
	if errNoCause.Unwrap() != nil {
		t.Errorf("Unwrap() on error without cause should return nil")
	}
}

func TestHumanError_Is(t *testing.T) {
	err := fmt.Errorf("converting: %w", NewInvalidInputError("0x10", "not a number"))

	if !errors.Is(err, &HumanError{Code: InvalidInput}) {
		t.Error("errors.Is should match on code through wrapping")
	}
	if errors.Is(err, &HumanError{Code: NoMatch}) {
		t.Error("errors.Is should not match a different code")
	}

	var he *HumanError
	if !errors.As(err, &he) {
		t.Fatal("errors.As should find the HumanError")
	}
	if he.Input != "0x10" {
		t.Errorf("Input = %q, want %q", he.Input, "0x10")
	}
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", NewHumanError(NoMatch, "x", nil)))

	if !HasCode(wrapped, NoMatch) {
		t.Error("HasCode should find a code two levels down")
	}
	if HasCode(wrapped, InvalidInput) {
		t.Error("HasCode should not report a code that is not present")
	}
	if HasCode(nil, NoMatch) {
		t.Error("HasCode(nil) should be false")
	}
	if HasCode(errors.New("plain"), NoMatch) {
		t.Error("HasCode on a plain error should be false")
	}
}

func TestAsHumanError(t *testing.T) {
	inner := NewInvalidInputError("12af", "not a number")
	he, ok := AsHumanError(fmt.Errorf("convert: %w", inner))
	if !ok || he != inner {
		t.Fatalf("AsHumanError() = %v, %v; want the wrapped error", he, ok)
	}

	if _, ok := AsHumanError(errors.New("plain")); ok {
		t.Error("AsHumanError on a plain error should be false")
	}
}

func TestGetSuggestedFixes(t *testing.T) {
	tests := []struct {
		code    ErrorCode
		wantNil bool
		wantLen int
	}{
		{NoMatch, false, 1},
		{UnknownFormat, false, 1},
		{ConfigInvalid, false, 2},
		{HistoryUnavailable, false, 1},
		{InvalidInput, true, 0},
		{InternalError, true, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			fixes := GetSuggestedFixes(tt.code)

			if tt.wantNil && fixes != nil {
				t.Errorf("GetSuggestedFixes(%v) = %v, want nil", tt.code, fixes)
			}
			if !tt.wantNil && len(fixes) != tt.wantLen {
				t.Errorf("GetSuggestedFixes(%v) len = %d, want %d", tt.code, len(fixes), tt.wantLen)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		InvalidInput,
		NoMatch,
		UnknownFormat,
		ConfigInvalid,
		HistoryUnavailable,
		InternalError,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %v", code)
		}
		seen[code] = true

		if string(code) == "" {
			t.Error("Error code should not be empty")
		}
	}
}

func TestErrorActionsMap(t *testing.T) {
	for code, fixes := range ErrorActions {
		if len(fixes) == 0 {
			t.Errorf("ErrorActions[%v] has no fix actions", code)
		}
		for i, fix := range fixes {
			if !strings.HasPrefix(fix.Command, "human ") {
				t.Errorf("ErrorActions[%v][%d].Command = %q, want a human subcommand", code, i, fix.Command)
			}
		}
	}
}
