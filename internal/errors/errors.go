package errors

import "net/http"

// ErrorWithStatusCode is the error type every layer below the handlers
// returns. Code is a stable machine-readable identifier (the translator maps
// it to a user-facing message); Message is an optional override used when no
// translation exists. Errors propagate unmodified from storage to handler.
type ErrorWithStatusCode struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Invariant marks a malformed or incomplete payload, raised before any I/O.
func Invariant(code string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Code: code, StatusCode: http.StatusBadRequest}
}

// NotFound marks a referenced thread, comment or reply that is absent or
// soft-deleted.
func NotFound(code string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Code: code, StatusCode: http.StatusNotFound}
}

// Forbidden marks an ownership mismatch on delete.
func Forbidden(code string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Code: code, StatusCode: http.StatusForbidden}
}

// Unauthorized marks a missing or invalid token.
func Unauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}
