package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the categorized, user-facing error type. Everything returned
// from the comment and summarizer boundaries is one of these; raw
// collaborator faults never escape past those packages.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func E(op string, err error, message string, code int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidInput(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusBadRequest)
}

func NotFound(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusNotFound)
}

func Forbidden(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusForbidden)
}

func Unauthorized(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusUnauthorized)
}

func RateLimited(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusTooManyRequests)
}

func Internal(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusInternalServerError)
}

// BadGateway marks faults raised by an external collaborator that do not
// fit a more specific category.
func BadGateway(op string, err error, message string) *Error {
	return E(op, err, message, http.StatusBadGateway)
}

func RateLimitExceeded(op string) *Error {
	return E(op, nil, "Rate limit exceeded", http.StatusTooManyRequests)
}

func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == http.StatusNotFound
	}
	return false
}

// CodeOf returns the HTTP status carried by err, or 500 for plain errors.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message carried by err. Plain errors
// are masked behind a generic message so internals don't leak to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
