package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type stepRepository struct {
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{db: db}
}

func (r *stepRepository) GetByID(id uint) (*models.FundProtectionStep, error) {
	var step models.FundProtectionStep
	if err := r.db.First(&step, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStepNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return &step, nil
}

func (r *stepRepository) ListByTransaction(transactionID uint) ([]models.FundProtectionStep, error) {
	var steps []models.FundProtectionStep
	err := r.db.
		Where("transaction_id = ?", transactionID).
		Order("step_number ASC").
		Find(&steps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

func (r *stepRepository) ReplaceForTransaction(transactionID uint, steps []*models.FundProtectionStep) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("transaction_id = ?", transactionID).
			Delete(&models.FundProtectionStep{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing steps: %w", err)
		}
		if len(steps) == 0 {
			return nil
		}
		if err := tx.Create(steps).Error; err != nil {
			return fmt.Errorf("failed to insert steps: %w", err)
		}
		return nil
	})
}

func (r *stepRepository) CountIncompleteBefore(transactionID uint, stepNumber int) (int64, error) {
	var count int64
	err := r.db.Model(&models.FundProtectionStep{}).
		Where("transaction_id = ? AND step_number < ? AND status <> ?",
			transactionID, stepNumber, models.StepStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count earlier incomplete steps: %w", err)
	}
	return count, nil
}

func (r *stepRepository) CountIncomplete(transactionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FundProtectionStep{}).
		Where("transaction_id = ? AND status <> ?", transactionID, models.StepStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count incomplete steps: %w", err)
	}
	return count, nil
}

func (r *stepRepository) MarkCompleted(id uint) error {
	result := r.db.Model(&models.FundProtectionStep{}).
		Where("id = ? AND status <> ?", id, models.StepStatusCompleted).
		Update("status", models.StepStatusCompleted)
	if result.Error != nil {
		return fmt.Errorf("failed to complete step: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *stepRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.FundProtectionStep{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update step status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStepNotFound
	}
	return nil
}
