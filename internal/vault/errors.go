package vault

import "errors"

// Flat error taxonomy of the funding vault. Every failure is terminal
// for that call and leaves no partial state change behind.
var (
	ErrNotInitialized       = errors.New("vault not initialized")
	ErrAlreadyInitialized   = errors.New("vault already initialized")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMilestoneNotApproved = errors.New("milestone not approved")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrProjectNotActive     = errors.New("project not active")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAlreadyRegistered    = errors.New("contributor already registered")
	ErrContributorNotFound  = errors.New("contributor not found")
	ErrContractPaused       = errors.New("vault is paused")
	ErrContractNotPaused    = errors.New("vault is not paused")
)
