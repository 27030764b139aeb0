// Package apperrors defines the application error taxonomy. Lookups that
// find nothing are not errors anywhere in this codebase; they come back as
// nil results.
package apperrors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	// ErrorTypeValidation is malformed input, caught before any I/O.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypePrecondition is a required prior record that is missing.
	ErrorTypePrecondition ErrorType = "precondition"
	// ErrorTypeStorage is any failure inside a storage operation.
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeConfiguration is missing required external configuration.
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeRemote is a failed call to the remote AI endpoint.
	ErrorTypeRemote ErrorType = "remote"
)

// AppError represents an application error with additional context
type AppError struct {
	Type     ErrorType
	Message  string
	Code     string
	Internal error
	Source   string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  caller(),
	}
}

// Wrap wraps an existing error into AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   caller(),
	}
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", file, line)
}

// TypeOf returns the taxonomy type of err, or "" for plain errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return TypeOf(err) == ErrorTypeValidation }

// IsPrecondition reports whether err is a precondition error.
func IsPrecondition(err error) bool { return TypeOf(err) == ErrorTypePrecondition }

// IsStorage reports whether err is a storage error.
func IsStorage(err error) bool { return TypeOf(err) == ErrorTypeStorage }

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return TypeOf(err) == ErrorTypeConfiguration }

// IsRemote reports whether err is a remote error.
func IsRemote(err error) bool { return TypeOf(err) == ErrorTypeRemote }

// LogFields returns structured logging fields
func (e *AppError) LogFields() []any {
	fields := []any{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	return fields
}

// Handler provides error logging strategies
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new error handler
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle logs an error according to its type. User mistakes log at warn,
// faults at error.
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		h.logger.Error("Unhandled error", "error", err.Error())
		return
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypePrecondition:
		h.logger.Warn("Rejected input", appErr.LogFields()...)
	default:
		h.logger.Error("Operation failed", appErr.LogFields()...)
	}
}

// Convenience constructors for the taxonomy.

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, "VALIDATION", message)
}

func NewPreconditionError(message string) *AppError {
	return New(ErrorTypePrecondition, "PRECONDITION", message)
}

func NewStorageError(err error, operation string) *AppError {
	return Wrap(err, ErrorTypeStorage, "STORAGE", operation+" failed")
}

func NewConfigurationError(message string) *AppError {
	return New(ErrorTypeConfiguration, "CONFIGURATION", message)
}

func NewRemoteError(err error, message string) *AppError {
	return Wrap(err, ErrorTypeRemote, "REMOTE", message)
}
