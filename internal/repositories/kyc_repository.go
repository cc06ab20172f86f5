package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type KYCRepository interface {
	Create(v *models.KYCVerification) error
	// LatestByUserAndTier returns the most recent verification for the tier,
	// or nil when the user never started one.
	LatestByUserAndTier(userID uint, tier int) (*models.KYCVerification, error)
	Update(v *models.KYCVerification) error
}

type kycRepository struct {
	db *gorm.DB
}

func NewKYCRepository(db *gorm.DB) KYCRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) Create(v *models.KYCVerification) error {
	if err := r.db.Create(v).Error; err != nil {
		return fmt.Errorf("failed to create kyc verification: %w", err)
	}
	return nil
}

func (r *kycRepository) LatestByUserAndTier(userID uint, tier int) (*models.KYCVerification, error) {
	var v models.KYCVerification
	err := r.db.Where("user_id = ? AND tier = ?", userID, tier).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kyc verification: %w", err)
	}
	return &v, nil
}

func (r *kycRepository) Update(v *models.KYCVerification) error {
	if err := r.db.Save(v).Error; err != nil {
		return fmt.Errorf("failed to update kyc verification: %w", err)
	}
	return nil
}
