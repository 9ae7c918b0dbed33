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

// ErrInvalidIdentifier is returned by the resolver when, without a trip
// scope, any supplied identifier is not a valid integer place ID. The whole
// request fails — no partial result is produced.
// Handlers should map this to HTTP 400.
var ErrInvalidIdentifier = errors.New("invalid identifier")
