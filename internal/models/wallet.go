package models

import "gorm.io/gorm"

// Wallet is a currency-scoped custodial account held at the payment
// provider. The platform stores the provider-issued wallet id and, once
// enriched, the blockchain deposit address; balances live at the provider.
type Wallet struct {
	gorm.Model
	UserID           uint   `gorm:"not null;index:idx_wallet_user_currency,unique"`
	Currency         string `gorm:"not null;index:idx_wallet_user_currency,unique"`
	ProviderWalletID string `gorm:"not null"`
	Address          string // deposit address, empty until enrichment
	Status           string `gorm:"default:'active'"`
}

// HasAddress reports whether the wallet has been enriched with a deposit
// address.
func (w *Wallet) HasAddress() bool { return w.Address != "" }
