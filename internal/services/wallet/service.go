package wallet

import (
	"context"
	"errors"
	"fmt"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/fundprotection"
	"domus/internal/services/payment"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("wallet not found")
	ErrForbidden       = errors.New("wallet belongs to another user")
	ErrInvalidCurrency = errors.New("unsupported currency")
	ErrAlreadyExists   = errors.New("wallet already exists for this currency")
)

// Service manages provider-backed custodial wallets, one per (user,
// currency). Creation opens the wallet at the provider first; the row is
// only persisted once the provider returns a wallet id.
type Service interface {
	Create(ctx context.Context, userID uint, currency string) (*models.Wallet, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Wallet, error)
	Balance(ctx context.Context, walletID, userID uint) (decimal.Decimal, error)
}

type service struct {
	repo     repositories.WalletRepository
	provider payment.Provider
}

func NewService(repo repositories.WalletRepository, provider payment.Provider) Service {
	if repo == nil {
		panic("wallet repo is required")
	}
	if provider == nil {
		panic("payment provider is required")
	}
	return &service{repo: repo, provider: provider}
}

func (s *service) Create(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	if !fundprotection.AllowedCurrencies[currency] && currency != fundprotection.CurrencyEUR {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	if existing, err := s.repo.GetByUserAndCurrency(userID, currency); err == nil && existing != nil {
		return nil, ErrAlreadyExists
	} else if err != nil && !errors.Is(err, repositories.ErrWalletNotFound) {
		return nil, err
	}

	providerWalletID, err := s.provider.CreateWallet(ctx, userID, currency)
	if err != nil {
		return nil, err
	}

	w := &models.Wallet{
		UserID:           userID,
		Currency:         currency,
		ProviderWalletID: providerWalletID,
	}
	if err := s.repo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]models.Wallet, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Balance(ctx context.Context, walletID, userID uint) (decimal.Decimal, error) {
	w, err := s.repo.GetByID(walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return decimal.Zero, ErrNotFound
		}
		return decimal.Zero, err
	}
	if w.UserID != userID {
		return decimal.Zero, ErrForbidden
	}
	return s.provider.GetWalletBalance(ctx, w.ProviderWalletID)
}
