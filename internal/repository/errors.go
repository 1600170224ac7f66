package repository

import "errors"

// Common repository errors
var (
	// ErrPersistence wraps every failure of the underlying storage medium
	ErrPersistence = errors.New("persistence failure")

	// ErrCorruptState is returned when the stored blob cannot be decoded
	ErrCorruptState = errors.New("stored state is corrupt")
)
