// Package caseerrors provides structured error types for casetools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the validation
// failures that gate case conversion.
//
// # Error Categories
//
//   - TypeError: input is not a string-typed value (nil input gets a distinct message)
//   - EmptyInputError: input is empty or whitespace-only after trimming
//   - LeadingDigitError: trimmed input begins with a decimal digit
//   - NoWordCharactersError: tokenization produced no words
//
// Each category carries a sentinel for errors.Is checks: ErrInputType
// (and ErrNilInput for the nil sub-case), ErrEmptyInput,
// ErrLeadingDigit, and ErrNoWordCharacters.
//
// # Usage with errors.Is
//
//	out, err := formatter.CamelCase("123abc")
//	if err != nil {
//	    if errors.Is(err, caseerrors.ErrLeadingDigit) {
//	        // Reject identifiers that begin with a digit
//	    }
//	}
package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInputType indicates the input was not a string-typed value.
	ErrInputType = errors.New("input type error")

	// ErrNilInput indicates the input was nil.
	ErrNilInput = errors.New("nil input")

	// ErrEmptyInput indicates the input was empty or whitespace-only.
	ErrEmptyInput = errors.New("empty input")

	// ErrLeadingDigit indicates the input began with a decimal digit.
	ErrLeadingDigit = errors.New("leading digit")

	// ErrNoWordCharacters indicates tokenization produced no words.
	ErrNoWordCharacters = errors.New("no word characters")
)

// TypeError represents an input that is not a string-typed value.
// It is reported by the dynamically typed entry points (FormatValue,
// StringValue, WithValue) where callers may hand over arbitrary values.
type TypeError struct {
	// Value is the offending value (nil when IsNil is true)
	Value any
	// IsNil is true if the input was nil rather than a non-string value
	IsNil bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "input type error"
	if e.IsNil {
		msg = "nil input"
	}
	msg += ": expected a string"
	if !e.IsNil && e.Value != nil {
		msg += fmt.Sprintf(", got %T", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as TypeError has no underlying cause.
func (e *TypeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrInputType, and also ErrNilInput when IsNil is set.
func (e *TypeError) Is(target error) bool {
	if target == ErrInputType {
		return true
	}
	if target == ErrNilInput && e.IsNil {
		return true
	}
	return false
}

// EmptyInputError represents an input that is empty after trimming.
type EmptyInputError struct {
	// Input is the original input (non-empty when the input was whitespace-only)
	Input string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	msg := "empty input"
	if e.Input != "" {
		msg += ": input is whitespace-only"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as EmptyInputError has no underlying cause.
func (e *EmptyInputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// LeadingDigitError represents an input whose first character is a
// decimal digit. Only the strict tokenization policy reports it.
type LeadingDigitError struct {
	// Input is the trimmed input that was rejected
	Input string
	// Digit is the offending first character (0 if unknown)
	Digit rune
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *LeadingDigitError) Error() string {
	msg := "leading digit"
	if e.Digit != 0 {
		msg += fmt.Sprintf(": input begins with %q", e.Digit)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as LeadingDigitError has no underlying cause.
func (e *LeadingDigitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *LeadingDigitError) Is(target error) bool {
	return target == ErrLeadingDigit
}

// NoWordCharactersError represents an input that produced no word
// tokens, meaning it consisted entirely of separators and punctuation.
type NoWordCharactersError struct {
	// Input is the trimmed input that was rejected
	Input string
	// Policy is the name of the tokenization policy in force
	Policy string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *NoWordCharactersError) Error() string {
	msg := "no word characters"
	if e.Input != "" {
		msg += fmt.Sprintf(": %q", e.Input)
	}
	if e.Policy != "" {
		msg += " (policy: " + e.Policy + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as NoWordCharactersError has no underlying cause.
func (e *NoWordCharactersError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NoWordCharactersError) Is(target error) bool {
	return target == ErrNoWordCharacters
}
