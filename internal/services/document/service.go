package document

import (
	"context"
	"errors"

	"domus/internal/models"
	"domus/internal/repositories"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrForbidden   = errors.New("actor is not a party to this transaction")
	ErrInvalidType = errors.New("unknown document type")
)

var validTypes = map[string]bool{
	models.DocTypePromissory:              true,
	models.DocTypePromissoryCountersigned: true,
	models.DocTypeRepresentation:          true,
	models.DocTypeMediation:               true,
	models.DocTypeFiatProof:               true,
	models.DocTypeComplianceReport:        true,
}

// Service records document metadata against a transaction. Files live in
// external storage; the platform keeps the URL and the uploader.
type Service interface {
	Upload(ctx context.Context, transactionID, uploaderID uint, uploaderRole, docType, name, url string) (*models.Document, error)
	ListByTransaction(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.Document, error)
}

type service struct {
	docRepo repositories.DocumentRepository
	txRepo  repositories.TransactionRepository
}

func NewService(docRepo repositories.DocumentRepository, txRepo repositories.TransactionRepository) Service {
	if docRepo == nil {
		panic("document repo is required")
	}
	if txRepo == nil {
		panic("transaction repo is required")
	}
	return &service{docRepo: docRepo, txRepo: txRepo}
}

func (s *service) Upload(ctx context.Context, transactionID, uploaderID uint, uploaderRole, docType, name, url string) (*models.Document, error) {
	if !validTypes[docType] {
		return nil, ErrInvalidType
	}

	tx, err := s.txRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if uploaderRole != models.RoleAdmin && tx.PartyOf(uploaderID) == "" {
		return nil, ErrForbidden
	}

	doc := &models.Document{
		TransactionID: &tx.ID,
		UploaderID:    uploaderID,
		Type:          docType,
		Name:          name,
		StorageURL:    url,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) ListByTransaction(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.Document, error) {
	tx, err := s.txRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorRole != models.RoleAdmin && tx.PartyOf(actorID) == "" {
		return nil, ErrForbidden
	}
	return s.docRepo.ListByTransaction(transactionID)
}
