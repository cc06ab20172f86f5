package fundprotection

import (
	"context"

	"domus/internal/models"

	"github.com/shopspring/decimal"
)

// Service generates and tracks the fund-protection steps of a transaction.
type Service interface {
	// Initialize (re)generates the full step set for the transaction. The
	// previous set, if any, is discarded atomically; calling twice with
	// different currencies leaves only the second set.
	Initialize(ctx context.Context, transactionID, actorID uint, actorRole, currency string) (*Result, error)

	// CompleteStep marks a step completed on behalf of the acting party.
	// Steps complete strictly in stepNumber order.
	CompleteStep(ctx context.Context, stepID, actorID uint) (*models.FundProtectionStep, error)

	// Steps lists the transaction's steps in execution order.
	Steps(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.FundProtectionStep, error)
}

// Result is the outcome of an initialization: the generated steps plus the
// computed amounts. Display amounts are rounded (2 decimals EUR, 8 crypto);
// the stored step amounts keep full precision.
type Result struct {
	Steps           []models.FundProtectionStep `json:"steps"`
	Currency        string                      `json:"currency"`
	CryptoEURAmount decimal.Decimal             `json:"crypto_eur_amount"`
	CryptoAmount    decimal.Decimal             `json:"crypto_amount"`
	FiatEURAmount   decimal.Decimal             `json:"fiat_eur_amount"`
	ExchangeRate    decimal.Decimal             `json:"exchange_rate"`
	RateFallback    bool                        `json:"rate_fallback"`
}
