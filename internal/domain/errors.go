package domain

import "errors"

// Domain-specific errors for emission and ledger operations.
var (
	// Output errors
	ErrOutputNotWritable = errors.New("output not writable")
	ErrEmptyDestination  = errors.New("destination path is required")

	// Content errors
	ErrNoParts        = errors.New("no content parts configured")
	ErrPartUnreadable = errors.New("content part unreadable")

	// Site configuration errors
	ErrInvalidSite = errors.New("invalid site configuration")

	// Ledger errors
	ErrLedgerDisabled   = errors.New("emission ledger is not configured")
	ErrEmissionNotFound = errors.New("emission not found")
)
