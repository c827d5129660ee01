package token

import "errors"

// Invariant violations surface as typed errors, never panics, so callers
// can distinguish and recover.
var (
	ErrTokenNotFound         = errors.New("token not found")
	ErrAlreadyInitialized    = errors.New("token already initialized")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrAccountFrozen         = errors.New("account is frozen")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrAllowanceExpired      = errors.New("allowance expired")
)
