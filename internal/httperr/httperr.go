// Package httperr defines the closed set of API error variants and maps them
// to HTTP responses in one place. Infrastructure-specific failures (MySQL
// duplicate keys, TMDB statuses) are translated into these variants at the
// call site that produces them; handlers never inspect driver errors.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind tags an API error variant.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindUnauthorized
	KindNotFound
	KindUpstream
	KindInternal
)

// Error is a tagged application error carried from services to the HTTP layer.
type Error struct {
	Kind    Kind
	Message string
	// Status overrides the kind's default status when non-zero. Used to
	// forward an upstream catalog API status.
	Status int
}

func (e *Error) Error() string { return e.Message }

// Validation returns a bad-request error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict returns a duplicate-resource error. The wire status is 400, not
// 409: existing clients of this API expect 400 for duplicate email and
// duplicate favorite.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Unauthorized returns an authentication error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// NotFound returns a missing-resource error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Upstream returns an error forwarding a catalog API failure. status may be
// zero when the upstream never responded.
func Upstream(status int, msg string) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Status: status}
}

// statusFor maps an error kind to its HTTP status code.
func statusFor(e *Error) int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Write renders err as a JSON error response. Errors that are not *Error
// default to a generic 500.
func Write(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = &Error{Kind: KindInternal, Message: "internal server error"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(apiErr))
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": apiErr.Message,
	})
}
