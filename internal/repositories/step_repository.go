package repositories

import "domus/internal/models"

// StepRepository is the persistence boundary for fund-protection steps.
// Steps for one transaction are treated as a single logical unit during
// regeneration: ReplaceForTransaction deletes and inserts in one database
// transaction so a failure leaves no partial set.
type StepRepository interface {
	GetByID(id uint) (*models.FundProtectionStep, error)
	ListByTransaction(transactionID uint) ([]models.FundProtectionStep, error)

	// ReplaceForTransaction atomically deletes any existing steps for the
	// transaction and inserts the new batch.
	ReplaceForTransaction(transactionID uint, steps []*models.FundProtectionStep) error

	// CountIncompleteBefore counts steps of the transaction with a lower
	// step number that are not COMPLETED.
	CountIncompleteBefore(transactionID uint, stepNumber int) (int64, error)

	// CountIncomplete counts all steps of the transaction not COMPLETED.
	CountIncomplete(transactionID uint) (int64, error)

	// MarkCompleted sets the step COMPLETED only if it is not already;
	// returns ErrStatusConflict on idempotent re-invocation.
	MarkCompleted(id uint) error

	UpdateStatus(id uint, status string) error
}
