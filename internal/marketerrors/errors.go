package marketerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrMemeNotFound = errors.New("meme not found")
	ErrUnavailable  = errors.New("record store unavailable")
)

// business logic errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidAmount       = errors.New("bid amount must be positive")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrConflictingState    = errors.New("conflicting resource state")
)
