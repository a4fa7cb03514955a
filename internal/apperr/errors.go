package apperr

import "errors"

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// Refused indicates that an operation was rejected by a safety guard,
// e.g. deleting the last remaining admin account.
var Refused = errors.New("refused")
