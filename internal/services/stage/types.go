package stage

import (
	"context"

	"domus/internal/models"
	"domus/internal/services/fundprotection"

	"github.com/shopspring/decimal"
)

// Service is the authoritative state machine for the deal lifecycle. Every
// transaction status change goes through Transition; handlers never write
// status fields directly.
type Service interface {
	// MakeOffer creates a transaction in OFFER on an approved property.
	MakeOffer(ctx context.Context, req OfferRequest) (*models.Transaction, error)

	// Transition applies one lifecycle action, re-validating role and
	// preconditions against fresh persisted state.
	Transition(ctx context.Context, req TransitionRequest) (*Result, error)

	Get(ctx context.Context, transactionID, actorID uint, actorRole string) (*models.Transaction, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
	OfferHistory(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.Offer, error)
}

// Generator is the fund-protection initializer invoked on entry into
// FUND_PROTECTION.
type Generator interface {
	Initialize(ctx context.Context, transactionID, actorID uint, actorRole, currency string) (*fundprotection.Result, error)
}

// OfferRequest is a buyer's initial offer on a property.
type OfferRequest struct {
	PropertyID       uint
	BuyerID          uint
	Amount           decimal.Decimal
	Message          string
	PaymentMethod    string
	CryptoPercentage int
	FiatPercentage   int
}

// TransitionRequest identifies the actor, the action, and the action's
// parameters. ActorRole comes from the session; party membership is
// re-validated against the transaction row.
type TransitionRequest struct {
	TransactionID uint
	ActorID       uint
	ActorRole     string
	Action        Action
	Amount        decimal.Decimal // counter_offer
	Message       string
	Currency      string // start_fund_protection
	Reason        string // cancel
}

// Result reports the applied transition. Generation is set only when the
// action entered FUND_PROTECTION.
type Result struct {
	NewStatus   string                 `json:"new_status"`
	Transaction *models.Transaction    `json:"transaction"`
	Generation  *fundprotection.Result `json:"generation,omitempty"`
}
