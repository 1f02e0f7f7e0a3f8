package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the requested company.
var ErrForbidden = errors.New("forbidden")

// ErrConfiguration indicates a malformed statement template or dimension mapping.
var ErrConfiguration = errors.New("configuration error")

// ErrUnbalanced indicates that a payment list does not add up to its transaction amount.
var ErrUnbalanced = errors.New("payments do not balance")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ConfigError describes why a statement template cannot be evaluated.
// It always matches ErrConfiguration with errors.Is.
type ConfigError struct {
	LineID string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.LineID == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: line %q: %s", ErrConfiguration.Error(), e.LineID, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// NewConfigError creates a ConfigError for the given line.
func NewConfigError(lineID, format string, args ...any) *ConfigError {
	return &ConfigError{LineID: lineID, Reason: fmt.Sprintf(format, args...)}
}
