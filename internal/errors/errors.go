package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidInput indicates input that a handler accepted but could not transform
	InvalidInput ErrorCode = "INVALID_INPUT"
	// NoMatch indicates that no registered handler accepts the input
	NoMatch ErrorCode = "NO_MATCH"
	// UnknownFormat indicates a format name that is not registered
	UnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	// ConfigInvalid indicates a configuration value that failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// HistoryUnavailable indicates the history database could not be used
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixAction represents a suggested command that may resolve an error
type FixAction struct {
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
}

// HumanError is a coded error carrying the offending input and suggestions
type HumanError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Input          string      `json:"input,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewHumanError creates a new HumanError with the default fixes for its code
func NewHumanError(code ErrorCode, message string, cause error) *HumanError {
	return &HumanError{
		Code:           code,
		Message:        message,
		SuggestedFixes: GetSuggestedFixes(code),
		cause:          cause,
	}
}

// NewInvalidInputError reports input that passed a handler's predicate (or
// was forced onto a handler) but cannot be transformed.
func NewInvalidInputError(input, reason string) *HumanError {
	return NewHumanError(InvalidInput, reason, nil).WithInput(input)
}

// Error implements the error interface
func (e *HumanError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Input != "" {
		msg = fmt.Sprintf("%s (input %q)", msg, e.Input)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *HumanError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a HumanError with the same code, so callers
// can match with errors.Is(err, &HumanError{Code: InvalidInput}).
func (e *HumanError) Is(target error) bool {
	t, ok := target.(*HumanError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithInput records the input that caused the error
func (e *HumanError) WithInput(input string) *HumanError {
	e.Input = input
	return e
}

// HasCode reports whether err is, or wraps, a HumanError with the given code
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if he, ok := err.(*HumanError); ok && he.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// AsHumanError returns the first HumanError in err's chain
func AsHumanError(err error) (*HumanError, bool) {
	for err != nil {
		if he, ok := err.(*HumanError); ok {
			return he, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	NoMatch: {
		{
			Command:     "human formats",
			Description: "List the formats human knows about",
		},
	},
	UnknownFormat: {
		{
			Command:     "human formats",
			Description: "List the formats human knows about",
		},
	},
	ConfigInvalid: {
		{
			Command:     "human config show",
			Description: "Inspect the effective configuration",
		},
		{
			Command:     "human config init --force",
			Description: "Rewrite the config file with defaults",
		},
	},
	HistoryUnavailable: {
		{
			Command:     "human history clear",
			Description: "Reset the history database",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
