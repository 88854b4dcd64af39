package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput          = errors.New("input is empty or contains only whitespace")
	ErrNoInput             = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileEmpty           = errors.New("file is empty")
	ErrInvalidFilePath     = errors.New("invalid file path")
	ErrUnterminatedString  = errors.New("string literal is not terminated")
	ErrInvalidKeyword      = errors.New("keyword must be null, true or false")
	ErrMisplacedSign       = errors.New("sign is only permitted at the start of a numeric part")
	ErrUnexpectedCharacter = errors.New("character does not start any token")
	ErrNotADocument        = errors.New("a document must start with '{' or '['")
	ErrDepthExceeded       = errors.New("maximum nesting depth exceeded")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeLex     ErrorType = "lex"
	ErrorTypeSyntax  ErrorType = "syntax"
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
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewLexError creates a new error for a violation detected while scanning
// characters into tokens
func NewLexError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeLex,
		Message: message,
		Err:     err,
	}
}

// NewSyntaxError creates a new error for a structural violation detected
// while building the value tree
func NewSyntaxError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSyntax,
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

// IsLexError reports whether err is a scanning error
func IsLexError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeLex
}

// IsSyntaxError reports whether err is a structural parse error
func IsSyntaxError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeSyntax
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeLex:
			return fmt.Sprintf("JSON lexical error: %s", appErr.Message)
		case ErrorTypeSyntax:
			return fmt.Sprintf("JSON syntax error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnterminatedString) {
		return "Error: A string literal is missing its closing quote."
	}
	if errors.Is(err, ErrNotADocument) {
		return "Error: The document must be a JSON object or array at the top level."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
