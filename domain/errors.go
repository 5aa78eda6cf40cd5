package domain

import "errors"

// Common domain errors used across the library.
var (
	// ErrNilCard is returned when an operation requires a card and none
	// was provided.
	ErrNilCard = errors.New("card cannot be nil")

	// ErrInvalidDifficulty is returned when a review difficulty is not one
	// of the recognized values.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
