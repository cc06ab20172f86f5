package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository interface {
	Create(p *models.Property) error
	GetByID(id uint) (*models.Property, error)
	Update(p *models.Property) error
	ListByStatus(status string, limit, offset int) ([]models.Property, error)
	ListBySeller(sellerID uint) ([]models.Property, error)
	UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(p *models.Property) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *propertyRepository) GetByID(id uint) (*models.Property, error) {
	var p models.Property
	if err := r.db.First(&p, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

func (r *propertyRepository) Update(p *models.Property) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	return nil
}

func (r *propertyRepository) ListByStatus(status string, limit, offset int) ([]models.Property, error) {
	var props []models.Property
	err := r.db.Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&props).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return props, nil
}

func (r *propertyRepository) ListBySeller(sellerID uint) ([]models.Property, error) {
	var props []models.Property
	if err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&props).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return props, nil
}

func (r *propertyRepository) UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = next

	result := r.db.Model(&models.Property{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update property status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}
