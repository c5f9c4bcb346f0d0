package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTrip is returned when a trip's end precedes its start.
// It is deliberately distinct from ErrValidation so handlers can keep the
// dedicated 422 response with a fixed message for this one rule.
var ErrInvalidTrip = errors.New("trip end before start")

// ErrUnauthorized is returned when no account matches the presented
// credential, or password verification fails.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict is returned when deleting a car that still has trips.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")
