package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Handlers translate these to HTTP status codes; everything else is
// treated as an upstream failure.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrEmptyNote     = errors.New("note cannot be empty")
	ErrInvalidInput  = errors.New("invalid input")
)
