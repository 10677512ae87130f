// Package httpx provides HTTP response utilities and the application error taxonomy.
package httpx

import "net/http"

// Error is an application failure with a fixed HTTP status code.
// Headers, when present, are attached to the response verbatim.
type Error struct {
	Message    string
	StatusCode int
	Headers    http.Header
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newError(message, fallback string, status int, headers []http.Header) *Error {
	if message == "" {
		message = fallback
	}
	e := &Error{Message: message, StatusCode: status}
	if len(headers) > 0 {
		e.Headers = headers[0]
	}
	return e
}

// NotFound builds a 404 error. An empty message selects the kind default.
func NotFound(message string, headers ...http.Header) *Error {
	return newError(message, "Not Found", http.StatusNotFound, headers)
}

// Conflict builds a 409 error.
func Conflict(message string, headers ...http.Header) *Error {
	return newError(message, "Conflict", http.StatusConflict, headers)
}

// BadRequest builds a 400 error.
func BadRequest(message string, headers ...http.Header) *Error {
	return newError(message, "Bad Request", http.StatusBadRequest, headers)
}

// Forbidden builds a 403 error.
func Forbidden(message string, headers ...http.Header) *Error {
	return newError(message, "Forbidden", http.StatusForbidden, headers)
}

// Internal builds a 500 error.
func Internal(message string, headers ...http.Header) *Error {
	return newError(message, "Internal Server Error", http.StatusInternalServerError, headers)
}
