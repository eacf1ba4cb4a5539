// Package apperr defines the closed set of failure categories the API
// exposes, each mapped to an HTTP status code and a fixed message.
// Every handler failure path resolves to exactly one category; unknown
// errors fall back to Internal so no raw error ever reaches a client.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a failure category. The exported variables below are the
// only categories; request-time errors are attached to a category with
// Wrap and recovered with From.
type Error struct {
	Status  int
	Message string
	cause   error
}

var (
	BadRequest   = &Error{Status: http.StatusBadRequest, Message: "Bad Request"}
	UserNotFound = &Error{Status: http.StatusNotFound, Message: "User Not Found"}
	Internal     = &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error"}
	Database     = &Error{Status: http.StatusInternalServerError, Message: "Could not connect to database"}
	Migration    = &Error{Status: http.StatusInternalServerError, Message: "Could not migrate database"}
)

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any error of the same category, regardless of cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// Wrap returns a copy of the category carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Status: e.Status, Message: e.Message, cause: err}
}

// From resolves an arbitrary error to its category. Errors that carry
// no category resolve to Internal, keeping the mapping total.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal.Wrap(err)
}
