// Package httperror provides HTTP error types and constructors for use in handlers.
package httperror

import "fmt"

// Error implements the error interface with HTTP status code support.
type Error struct {
	code    int
	message string
	cause   error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the HTTP status code.
func (e *Error) Code() int { return e.code }

// Message returns the error message without the cause. This is what goes in
// the response body; the cause stays in server logs.
func (e *Error) Message() string { return e.message }

// Unwrap returns the underlying cause for errors.As/errors.Is support.
func (e *Error) Unwrap() error { return e.cause }

// New creates a new HTTP error with the given code and message.
func New(code int, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap wraps an underlying error with an HTTP error.
func Wrap(code int, message string, cause error) *Error {
	return &Error{code: code, message: message, cause: cause}
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{code: 400, message: message}
}

// BadRequestf creates a 400 Bad Request error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return &Error{code: 400, message: fmt.Sprintf(format, args...)}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	return &Error{code: 404, message: message}
}

// MethodNotAllowed creates a 405 Method Not Allowed error.
func MethodNotAllowed(message string) *Error {
	return &Error{code: 405, message: message}
}

// Internal creates a 500 Internal Server Error.
func Internal(message string) *Error {
	return &Error{code: 500, message: message}
}

// InternalWrap wraps a cause in a 500 Internal Server Error. The cause is
// logged, never sent to the client.
func InternalWrap(cause error) *Error {
	return &Error{code: 500, message: "internal server error", cause: cause}
}

// ServiceUnavailable creates a 503 Service Unavailable error.
func ServiceUnavailable(message string) *Error {
	return &Error{code: 503, message: message}
}
