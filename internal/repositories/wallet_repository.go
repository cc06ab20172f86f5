package repositories

import "domus/internal/models"

// WalletRepository is the persistence boundary for provider-backed wallets.
// One row per (user, currency); the balance lives at the provider.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	GetByUserAndCurrency(userID uint, currency string) (*models.Wallet, error)
	ListByUser(userID uint) ([]models.Wallet, error)
	Update(wallet *models.Wallet) error
	SetAddress(id uint, address string) error
}
