package services

import "errors"

var (
	// ErrInvalidParticipants is returned when a sender or receiver id is missing.
	ErrInvalidParticipants = errors.New("invalid sender or receiver id")
	// ErrPersistenceFailure wraps any store operation that rejects or returns no record.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)
