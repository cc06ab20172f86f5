package stage

import (
	"errors"
	"fmt"
)

// Service errors
var (
	// ErrForbidden means the actor's role or party does not permit the
	// requested action.
	ErrForbidden = errors.New("actor may not perform this action")

	// ErrPreconditionFailed means a required signature, document or KYC
	// gate is not satisfied; the wrapped message names the failed gate.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrConflict means the transaction was not in the expected source
	// state, usually because a concurrent transition was applied first.
	// Callers should re-fetch and retry once.
	ErrConflict = errors.New("transaction state changed concurrently")

	// ErrAlreadyApplied means a signing action was already performed by
	// this party; the flags are monotonic so there is nothing to redo.
	ErrAlreadyApplied = errors.New("action already applied")

	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAction = errors.New("unknown action")
	ErrInvalidOffer  = errors.New("invalid offer")
)

// failedGate wraps ErrPreconditionFailed with the name of the failed gate
// so the UI can direct the user.
func failedGate(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPreconditionFailed, fmt.Sprintf(format, args...))
}
