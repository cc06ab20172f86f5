package stage

import (
	"context"
	"time"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/fundprotection"

	"github.com/stretchr/testify/mock"
)

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(tx *models.Transaction) error {
	return m.Called(tx).Error(0)
}

func (m *MockTransactionRepo) GetByID(id uint) (*models.Transaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) GetByReference(ref string) (*models.Transaction, error) {
	args := m.Called(ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListByUser(userID uint, limit, offset int) ([]models.Transaction, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListAll(limit, offset int) ([]models.Transaction, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) HasActiveForProperty(propertyID, buyerID uint) (bool, error) {
	args := m.Called(propertyID, buyerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepo) UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error {
	return m.Called(id, expected, next, updates).Error(0)
}

func (m *MockTransactionRepo) UpdateFieldsIfStatus(id uint, status string, updates map[string]interface{}) error {
	return m.Called(id, status, updates).Error(0)
}

func (m *MockTransactionRepo) ExecuteInTransaction(fn func(repositories.TransactionRepository) error) error {
	return fn(m)
}

type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(p *models.Property) error {
	return m.Called(p).Error(0)
}

func (m *MockPropertyRepo) GetByID(id uint) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepo) Update(p *models.Property) error {
	return m.Called(p).Error(0)
}

func (m *MockPropertyRepo) ListByStatus(status string, limit, offset int) ([]models.Property, error) {
	args := m.Called(status, limit, offset)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepo) ListBySeller(sellerID uint) ([]models.Property, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepo) UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error {
	return m.Called(id, expected, next, updates).Error(0)
}

type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) Create(offer *models.Offer) error {
	return m.Called(offer).Error(0)
}

func (m *MockOfferRepo) ListByTransaction(transactionID uint) ([]models.Offer, error) {
	args := m.Called(transactionID)
	return args.Get(0).([]models.Offer), args.Error(1)
}

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(doc *models.Document) error {
	return m.Called(doc).Error(0)
}

func (m *MockDocumentRepo) ListByTransaction(transactionID uint) ([]models.Document, error) {
	args := m.Called(transactionID)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockDocumentRepo) HasForTransaction(transactionID uint, docType string, uploaderID *uint) (bool, error) {
	args := m.Called(transactionID, docType, uploaderID)
	return args.Bool(0), args.Error(1)
}

type MockStepRepo struct {
	mock.Mock
}

func (m *MockStepRepo) GetByID(id uint) (*models.FundProtectionStep, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FundProtectionStep), args.Error(1)
}

func (m *MockStepRepo) ListByTransaction(transactionID uint) ([]models.FundProtectionStep, error) {
	args := m.Called(transactionID)
	return args.Get(0).([]models.FundProtectionStep), args.Error(1)
}

func (m *MockStepRepo) ReplaceForTransaction(transactionID uint, steps []*models.FundProtectionStep) error {
	return m.Called(transactionID, steps).Error(0)
}

func (m *MockStepRepo) CountIncompleteBefore(transactionID uint, stepNumber int) (int64, error) {
	args := m.Called(transactionID, stepNumber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStepRepo) CountIncomplete(transactionID uint) (int64, error) {
	args := m.Called(transactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStepRepo) MarkCompleted(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockStepRepo) UpdateStatus(id uint, status string) error {
	return m.Called(id, status).Error(0)
}

type MockKYCService struct {
	mock.Mock
}

func (m *MockKYCService) TierStatus(ctx context.Context, userID uint, tier int) (string, error) {
	args := m.Called(ctx, userID, tier)
	return args.String(0), args.Error(1)
}

func (m *MockKYCService) Submit(ctx context.Context, userID uint, tier int, documentID, scanURL string) (*models.KYCVerification, error) {
	args := m.Called(ctx, userID, tier, documentID, scanURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KYCVerification), args.Error(1)
}

func (m *MockKYCService) UpdateStatus(ctx context.Context, userID uint, tier int, status string) error {
	return m.Called(ctx, userID, tier, status).Error(0)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Initialize(ctx context.Context, transactionID, actorID uint, actorRole, currency string) (*fundprotection.Result, error) {
	args := m.Called(ctx, transactionID, actorID, actorRole, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fundprotection.Result), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID uint, ntype, title, message string, data models.JSON) {
	m.Called(ctx, userID, ntype, title, message, data)
}

func (m *MockNotifier) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotifier) MarkRead(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocker) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
