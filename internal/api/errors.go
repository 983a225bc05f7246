package api

import "errors"

// Failure taxonomy for remote operations. Callers match with errors.Is; the
// controller converts any of these into a user-visible error state instead of
// crashing.
var (
	// ErrNetwork covers transport failures and request timeouts.
	ErrNetwork = errors.New("network error")
	// ErrAuth covers a missing, expired or rejected credential (401).
	ErrAuth = errors.New("authentication failed")
	// ErrValidation covers requests the server (or the client, before any
	// network call) refuses as malformed.
	ErrValidation = errors.New("invalid request")
	// ErrNotFound covers mutations against a since-deleted record (404).
	ErrNotFound = errors.New("not found")
)
