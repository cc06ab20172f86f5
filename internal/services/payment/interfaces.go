package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Rate is one exchange-rate quote from the provider, keyed by pair
// (for example "BTCEUR").
type Rate struct {
	Sell  decimal.Decimal `json:"sell"`
	Price decimal.Decimal `json:"price"`
}

// Provider is the custody/payment provider boundary. Every call is a
// blocking network request with a bounded timeout; failures are returned
// as ErrProviderUnavailable and never leak the provider's raw error shape.
type Provider interface {
	// CreateWallet opens a custodial wallet for the user and returns the
	// provider-issued wallet id.
	CreateWallet(ctx context.Context, userID uint, currency string) (string, error)

	// EnrichWallet requests a blockchain deposit address for a wallet.
	EnrichWallet(ctx context.Context, userID uint, providerWalletID string) (string, error)

	// GetExchangeRates returns the current quotes keyed by pair.
	GetExchangeRates(ctx context.Context) (map[string]Rate, error)

	// GetWalletBalance returns the provider-side balance of a wallet.
	GetWalletBalance(ctx context.Context, providerWalletID string) (decimal.Decimal, error)
}
