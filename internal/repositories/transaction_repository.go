package repositories

import "domus/internal/models"

// TransactionRepository is the persistence boundary for transactions.
// Status movement goes through the conditional updates so two concurrent
// transitions from the same source state cannot both succeed.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByReference(ref string) (*models.Transaction, error)
	ListByUser(userID uint, limit, offset int) ([]models.Transaction, error)
	ListAll(limit, offset int) ([]models.Transaction, error)
	HasActiveForProperty(propertyID uint, buyerID uint) (bool, error)

	// UpdateStatusIf moves the status from expected to next and applies any
	// extra column updates in the same statement. Returns ErrStatusConflict
	// when the row is no longer in the expected status.
	UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error

	// UpdateFieldsIfStatus applies column updates only while the row is in
	// the given status. Returns ErrStatusConflict otherwise.
	UpdateFieldsIfStatus(id uint, status string, updates map[string]interface{}) error

	ExecuteInTransaction(fn func(TransactionRepository) error) error
}
