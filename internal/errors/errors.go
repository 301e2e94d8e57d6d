package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrNotCanonical    = errors.New("input differs from canonical form")
)

// ErrorType categorizes errors
type ErrorType string

const (
	// Core value/parser/printer errors.
	ErrorTypeTypeMismatch        ErrorType = "type_mismatch"
	ErrorTypeMalformedLiteral    ErrorType = "malformed_literal"
	ErrorTypeUnexpectedCharacter ErrorType = "unexpected_character"
	ErrorTypeExpectedColon       ErrorType = "expected_colon"
	ErrorTypeIO                  ErrorType = "io"

	// CLI-level errors.
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewTypeMismatchError creates the error returned when a value accessor does
// not match the value's actual variant. Null answers every accessor this way.
func NewTypeMismatchError(want, got string) *AppError {
	return &AppError{
		Type:    ErrorTypeTypeMismatch,
		Message: fmt.Sprintf("value is %s, not %s", got, want),
	}
}

// NewMalformedLiteralError creates the error raised when the parser meets a
// misspelled true, false or null keyword.
func NewMalformedLiteralError(literal string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedLiteral,
		Message: fmt.Sprintf("misspelled literal %q", literal),
	}
}

// NewUnexpectedCharacterError creates the error raised when the parser reads
// a byte that cannot start a value. The offending byte is carried in the
// message.
func NewUnexpectedCharacterError(c byte) *AppError {
	return &AppError{
		Type:    ErrorTypeUnexpectedCharacter,
		Message: fmt.Sprintf("unexpected character %q", c),
	}
}

// NewExpectedColonError creates the error raised when an object key is not
// followed by ':'. A zero byte stands for end of input.
func NewExpectedColonError(got byte) *AppError {
	msg := "expected ':' after object key, got end of input"
	if got != 0 {
		msg = fmt.Sprintf("expected ':' after object key, got %q", got)
	}
	return &AppError{Type: ErrorTypeExpectedColon, Message: msg}
}

// NewIOError creates a new error related to opening an output path
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeTypeMismatch:
			return fmt.Sprintf("Type mismatch: %s", appErr.Message)
		case ErrorTypeMalformedLiteral, ErrorTypeUnexpectedCharacter, ErrorTypeExpectedColon:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeIO:
			return fmt.Sprintf("I/O error: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide JSON data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrNotCanonical) {
		return "Input is not in canonical form. Run jsonfmt without -c to rewrite it."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
