package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by Get when no value is stored under
	// the requested slot. Callers treat this as "absent", not as a
	// storage failure.
	ErrSlotNotFound = errors.New("session slot not found")
)
