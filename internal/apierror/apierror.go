// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a business error so the HTTP layer can pick a status code
// without string matching.
type Kind int

const (
	// KindValidation — malformed or missing input; caller's fault, no retry.
	KindValidation Kind = iota
	// KindConflict — the state already satisfies a uniqueness constraint
	// (caja already open, usuario already assigned to the turno).
	KindConflict
	// KindPrecondition — required prior state is missing (no open caja).
	KindPrecondition
	// KindNotFound — referenced entity does not exist.
	KindNotFound
	// KindTransaction — storage failure mid-transaction; always rolled back.
	KindTransaction
)

// Error is the canonical business error carried from services to handlers.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *Error) Error() string { return e.Detail }
func (e *Error) Unwrap() error { return e.cause }

func Validation(detail string) *Error   { return &Error{Kind: KindValidation, Detail: detail} }
func Conflict(detail string) *Error     { return &Error{Kind: KindConflict, Detail: detail} }
func Precondition(detail string) *Error { return &Error{Kind: KindPrecondition, Detail: detail} }
func NotFound(detail string) *Error     { return &Error{Kind: KindNotFound, Detail: detail} }

// Transaction wraps a storage-layer failure. The cause stays server-side; the
// client only ever sees the opaque detail.
func Transaction(detail string, cause error) *Error {
	return &Error{Kind: KindTransaction, Detail: detail, cause: cause}
}

// Status maps an error to its HTTP status code. Unrecognized errors are
// treated as internal failures.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindPrecondition:
		return http.StatusPreconditionFailed
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
