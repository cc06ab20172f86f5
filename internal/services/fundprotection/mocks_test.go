package fundprotection

import (
	"context"
	"time"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/payment"

	"github.com/shopspring/decimal"
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

type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) Create(wallet *models.Wallet) error {
	return m.Called(wallet).Error(0)
}

func (m *MockWalletRepo) GetByID(id uint) (*models.Wallet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) GetByUserAndCurrency(userID uint, currency string) (*models.Wallet, error) {
	args := m.Called(userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) ListByUser(userID uint) ([]models.Wallet, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Update(wallet *models.Wallet) error {
	return m.Called(wallet).Error(0)
}

func (m *MockWalletRepo) SetAddress(id uint, address string) error {
	return m.Called(id, address).Error(0)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateWallet(ctx context.Context, userID uint, currency string) (string, error) {
	args := m.Called(ctx, userID, currency)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) EnrichWallet(ctx context.Context, userID uint, providerWalletID string) (string, error) {
	args := m.Called(ctx, userID, providerWalletID)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetExchangeRates(ctx context.Context) (map[string]payment.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]payment.Rate), args.Error(1)
}

func (m *MockProvider) GetWalletBalance(ctx context.Context, providerWalletID string) (decimal.Decimal, error) {
	args := m.Called(ctx, providerWalletID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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
