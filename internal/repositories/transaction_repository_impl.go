package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.First(&tx, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) GetByReference(ref string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Where("reference = ?", ref).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListByUser(userID uint, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListAll(limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) HasActiveForProperty(propertyID uint, buyerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("property_id = ? AND buyer_id = ? AND status NOT IN ?",
			propertyID, buyerID, []string{models.TxStatusCompleted, models.TxStatusCancelled}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count active transactions: %w", err)
	}
	return count > 0, nil
}

func (r *transactionRepository) UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = next

	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *transactionRepository) UpdateFieldsIfStatus(id uint, status string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, status).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *transactionRepository) ExecuteInTransaction(fn func(TransactionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&transactionRepository{db: tx})
	})
}
