package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type OfferRepository interface {
	Create(offer *models.Offer) error
	ListByTransaction(transactionID uint) ([]models.Offer, error)
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(offer *models.Offer) error {
	if err := r.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *offerRepository) ListByTransaction(transactionID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}
