package errors

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode defines known error types in the system.
type ErrorCode int

const (
	// Core error codes.
	Unknown ErrorCode = iota
	InvalidInput
	ValidationFailed
	ResourceNotFound
	Canceled

	// Instance loading errors.
	IOFailed
	InvalidFormat
)

// String names the code for logs and rendered messages.
func (c ErrorCode) String() string {
	switch c {
	case InvalidInput:
		return "invalid_input"
	case ValidationFailed:
		return "validation_failed"
	case ResourceNotFound:
		return "resource_not_found"
	case Canceled:
		return "canceled"
	case IOFailed:
		return "io_failed"
	case InvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// Error represents a structured error with context.
type Error struct {
	code     ErrorCode // Type of error
	message  string    // Human-readable message
	original error     // Original/wrapped error
	fields   Fields    // Additional context
}

// Fields carries structured data about the error.
type Fields map[string]interface{}

// Error renders the message, the wrapped cause, and the structured
// fields. Fields print in sorted key order so the same failure always
// reads the same way.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.message)

	if e.original != nil {
		b.WriteString(": ")
		b.WriteString(e.original.Error())
	}

	if len(e.fields) > 0 {
		keys := make([]string, 0, len(e.fields))
		for k := range e.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.fields[k])
		}
		b.WriteString("]")
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.original
}

func (e *Error) Code() ErrorCode {
	return e.code
}

// New creates a new error with a code and message.
func New(code ErrorCode, message string) error {
	return &Error{
		code:    code,
		message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		code:     code,
		message:  message,
		original: err,
	}
}

// WithFields adds structured context to an error. When err is already a
// coded error the fields merge into it, with new keys winning; any other
// error is promoted to an Unknown-coded error carrying the fields.
func WithFields(err error, fields Fields) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		merged := make(Fields, len(e.fields)+len(fields))
		for k, v := range e.fields {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}

		return &Error{
			code:     e.code,
			message:  e.message,
			original: e.original,
			fields:   merged,
		}
	}

	return &Error{
		code:     Unknown,
		message:  err.Error(),
		original: err,
		fields:   fields,
	}
}

// Is matches errors by code, so callers can test against New(code, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// As implements error type casting for errors.As.
func (e *Error) As(target interface{}) bool {
	errorPtr, ok := target.(**Error)
	if !ok {
		return false
	}
	*errorPtr = e
	return true
}

// Fields returns a copy of the structured context.
func (e *Error) Fields() Fields {
	fields := make(Fields, len(e.fields))
	for k, v := range e.fields {
		fields[k] = v
	}
	return fields
}

// CodeOf extracts the ErrorCode from err, or Unknown when err does not
// carry one.
func CodeOf(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.code
	}
	return Unknown
}

// CheckContext reports whether ctx is already done, translating the
// cancellation into a Canceled error with the interrupted operation
// attached as a field.
func CheckContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return WithFields(
			Wrap(err, Canceled, "the operation was canceled"),
			Fields{"operation": operation})
	}
	return nil
}
