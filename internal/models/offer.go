package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Offer is one entry in the negotiation history of a transaction: the
// initial offer and every counter-offer after it. The transaction's
// OfferPrice always mirrors the latest row.
type Offer struct {
	gorm.Model
	TransactionID uint            `gorm:"not null;index"`
	UserID        uint            `gorm:"not null"`
	Party         string          `gorm:"not null"` // BUYER or SELLER
	Amount        decimal.Decimal `gorm:"type:numeric;not null"`
	Message       string
}
