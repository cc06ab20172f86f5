package repositories

import (
	"fmt"

	"domus/internal/models"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(doc *models.Document) error
	ListByTransaction(transactionID uint) ([]models.Document, error)
	// HasForTransaction reports whether a document of the given type was
	// uploaded for the transaction, optionally restricted to one uploader.
	HasForTransaction(transactionID uint, docType string, uploaderID *uint) (bool, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *models.Document) error {
	if err := r.db.Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *documentRepository) ListByTransaction(transactionID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (r *documentRepository) HasForTransaction(transactionID uint, docType string, uploaderID *uint) (bool, error) {
	query := r.db.Model(&models.Document{}).
		Where("transaction_id = ? AND type = ?", transactionID, docType)
	if uploaderID != nil {
		query = query.Where("uploader_id = ?", *uploaderID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check document: %w", err)
	}
	return count > 0, nil
}
