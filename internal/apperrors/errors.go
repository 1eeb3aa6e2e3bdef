package apperrors

import "errors"

// ErrNotFound indicates that a well-formed query matched no stored data.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfiguration indicates that a static-data invariant is violated.
// Treated as a fatal misconfiguration, not a per-request recoverable error.
var ErrConfiguration = errors.New("configuration error")

// ErrStorage indicates an underlying storage read failure.
var ErrStorage = errors.New("storage error")
