package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction statuses. Movement between them is governed exclusively by the
// stage service; handlers never write Status directly.
const (
	TxStatusOffer          = "OFFER"
	TxStatusNegotiation    = "NEGOTIATION"
	TxStatusAgreement      = "AGREEMENT"
	TxStatusFundProtection = "FUND_PROTECTION"
	TxStatusEscrow         = "ESCROW"
	TxStatusClosing        = "CLOSING"
	TxStatusCompleted      = "COMPLETED"
	TxStatusCancelled      = "CANCELLED"
)

// Payment methods
const (
	PaymentMethodFiat   = "FIAT"
	PaymentMethodCrypto = "CRYPTO"
	PaymentMethodHybrid = "HYBRID"
)

// Transaction represents one buyer-seller negotiation over one property.
// Terminal rows (COMPLETED/CANCELLED) are never deleted; they are retained
// for audit.
type Transaction struct {
	gorm.Model
	Reference  string `gorm:"uniqueIndex;not null"` // external uuid reference
	PropertyID uint   `gorm:"not null;index"`
	BuyerID    uint   `gorm:"not null;index"`
	SellerID   uint   `gorm:"not null;index"`
	Status     string `gorm:"not null;default:'OFFER';index"`

	// Commercial terms. AgreedPrice is set when the seller accepts and is
	// never present before AGREEMENT. Crypto/fiat percentages are only
	// meaningful for HYBRID and must sum to 100.
	OfferPrice         decimal.Decimal     `gorm:"type:numeric;not null"`
	AgreedPrice        decimal.NullDecimal `gorm:"type:numeric"`
	PaymentMethod      string              `gorm:"default:'FIAT'"`
	CryptoPercentage   int                 `gorm:"default:0"`
	FiatPercentage     int                 `gorm:"default:100"`
	SettlementCurrency string              // crypto currency chosen at fund-protection initialization

	// Sub-stage flags. Monotonic: once true they are never reset except by
	// administrative cancellation of the whole transaction.
	BuyerSigned           bool `gorm:"default:false"` // promissory agreement
	SellerSigned          bool `gorm:"default:false"`
	BuyerMediationSigned  bool `gorm:"default:false"`
	SellerMediationSigned bool `gorm:"default:false"`
	HasRepresentationDoc  bool `gorm:"default:false"`
	BuyerConfirmed        bool `gorm:"default:false"` // legal representation
	SellerConfirmed       bool `gorm:"default:false"`

	ProposalDate   time.Time
	AcceptanceDate *time.Time
	EscrowDate     *time.Time
	CompletionDate *time.Time
	CancelReason   string
}

// PartyOf returns BUYER or SELLER for the given user id, or "" when the user
// is not a party to this transaction.
func (t *Transaction) PartyOf(userID uint) string {
	switch userID {
	case t.BuyerID:
		return PartyBuyer
	case t.SellerID:
		return PartySeller
	default:
		return ""
	}
}

// Counterparty returns the other party's user id.
func (t *Transaction) Counterparty(userID uint) uint {
	if userID == t.BuyerID {
		return t.SellerID
	}
	return t.BuyerID
}

// IsTerminal reports whether the transaction can no longer move.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TxStatusCompleted || t.Status == TxStatusCancelled
}
