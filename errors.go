package checkout

import "errors"

// Errors surfaced to callers. Every validation failure returns one of these
// directly; storage and transport layers wrap their own failures around them.
var (
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvoiceExpired     = errors.New("invoice expired")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
	ErrInvalidExpiry      = errors.New("invalid expiry")
	ErrInvoiceNotOpen     = errors.New("invoice not open")
	ErrAmountMismatch     = errors.New("amount mismatch")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
)
