package repositories

import "errors"

// Repository errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrStepNotFound        = errors.New("fund protection step not found")
	ErrStatusConflict      = errors.New("status changed concurrently")
)
