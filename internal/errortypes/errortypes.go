// Package errortypes provides error types and handling for the mcp-sports
// gateway. Every component error carries one of the gateway's error kinds so
// the MCP facade can surface a structured tool-error instead of crashing.
package errortypes

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// ErrorType represents the kind of error that occurred
type ErrorType string

// Error kinds
const (
	// ErrorTypeConfig is a missing or invalid API credential or setting;
	// recoverable by update_api_config or restarting with a key.
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypeValidation is a malformed or missing tool argument;
	// the caller must correct and retry.
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeUnsupportedSport is a sport missing from the registry;
	// permanent until the registry is extended.
	ErrorTypeUnsupportedSport ErrorType = "unsupported_sport"

	// ErrorTypeUpstream is a provider failure status or unreadable body;
	// never retried on client-error statuses.
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeNetwork is a transport failure; retried once, then surfaced.
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParse is a payload that violates the required-field contract.
	ErrorTypeParse ErrorType = "parse"

	// ErrorTypeInternal is an unexpected failure inside the gateway itself.
	ErrorTypeInternal ErrorType = "internal"
)

// AppError represents an application error with context
type AppError struct {
	Err       error
	Type      ErrorType
	Message   string
	StackInfo string
	Fields    map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Err.Error()
}

// Unwrap unwraps the error to support errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithField adds a field to the error for additional context
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields adds multiple fields to the error for additional context
func (e *AppError) WithFields(fields map[string]interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// captureStack captures the stack trace at the call site
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		// Skip testing and standard library frames
		if !strings.Contains(frame.File, "testing/") && !strings.Contains(frame.File, "/go/src/") {
			fmt.Fprintf(&builder, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		}
		if !more {
			break
		}
	}
	return builder.String()
}

// newAppError creates a new AppError with the given kind, underlying error, and message
func newAppError(errType ErrorType, err error, message string) *AppError {
	if err == nil {
		err = errors.New("unknown error")
	}

	return &AppError{
		Err:       err,
		Type:      errType,
		Message:   message,
		StackInfo: captureStack(),
		Fields:    make(map[string]interface{}),
	}
}

// ConfigError creates a new configuration error
func ConfigError(err error, message string) *AppError {
	return newAppError(ErrorTypeConfig, err, message)
}

// ValidationError creates a new validation error
func ValidationError(err error, message string) *AppError {
	return newAppError(ErrorTypeValidation, err, message)
}

// UnsupportedSportError creates a new unsupported-sport error
func UnsupportedSportError(err error, message string) *AppError {
	return newAppError(ErrorTypeUnsupportedSport, err, message)
}

// UpstreamError creates a new upstream provider error
func UpstreamError(err error, message string) *AppError {
	return newAppError(ErrorTypeUpstream, err, message)
}

// NetworkError creates a new network error
func NetworkError(err error, message string) *AppError {
	return newAppError(ErrorTypeNetwork, err, message)
}

// ParseError creates a new payload parse error
func ParseError(err error, message string) *AppError {
	return newAppError(ErrorTypeParse, err, message)
}

// InternalError creates a new internal error
func InternalError(err error, message string) *AppError {
	return newAppError(ErrorTypeInternal, err, message)
}

// LogError logs an AppError using the provided slog.Logger or the default slog logger.
// It logs the error message, kind, stack trace, and any associated fields.
func LogError(logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		args := []any{
			"type", string(appErr.Type),
			"original_error", appErr.Err.Error(),
		}
		if appErr.StackInfo != "" {
			args = append(args, "stack", appErr.StackInfo)
		}
		for k, v := range appErr.Fields {
			args = append(args, k, v)
		}
		logger.Error(appErr.Message, args...)
	} else {
		logger.Error(err.Error(), "error", err)
	}
}

// KindOf returns the error kind carried by err, or ErrorTypeInternal for
// errors that did not originate from this package.
func KindOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return KindOf(err) == ErrorTypeConfig
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return KindOf(err) == ErrorTypeValidation
}

// IsUnsupportedSportError checks if an error is an unsupported-sport error
func IsUnsupportedSportError(err error) bool {
	return KindOf(err) == ErrorTypeUnsupportedSport
}

// IsUpstreamError checks if an error is an upstream provider error
func IsUpstreamError(err error) bool {
	return KindOf(err) == ErrorTypeUpstream
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return KindOf(err) == ErrorTypeNetwork
}

// IsParseError checks if an error is a payload parse error
func IsParseError(err error) bool {
	return KindOf(err) == ErrorTypeParse
}
