package fundprotection

import "errors"

// Service errors
var (
	// Generation errors. All of them abort initialization without creating
	// any steps.
	ErrInvalidCurrency = errors.New("invalid settlement currency")
	ErrInvalidSplit    = errors.New("crypto and fiat percentages must sum to 100")
	ErrWalletNotFound  = errors.New("party has no wallet for the settlement currency")
	ErrNoAgreedPrice   = errors.New("transaction has no agreed price")
	ErrWrongStage      = errors.New("transaction is not in fund protection")

	// Step completion errors
	ErrForbidden        = errors.New("step belongs to the other party")
	ErrOutOfOrder       = errors.New("an earlier step is not completed")
	ErrAlreadyCompleted = errors.New("step already completed")
	ErrStepNotFound     = errors.New("step not found")

	ErrNotFound = errors.New("transaction not found")
	ErrConflict = errors.New("fund protection is being modified concurrently")
)
