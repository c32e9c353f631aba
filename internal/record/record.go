package record

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalid is returned when a record is built or merged without its identity.
	ErrInvalid = errors.New("invalid record")
)
