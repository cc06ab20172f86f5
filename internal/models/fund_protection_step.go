package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fund-protection step types, in the order they are generated.
const (
	StepTypeCryptoDeposit  = "CRYPTO_DEPOSIT"  // buyer deposits crypto to the platform wallet
	StepTypeCryptoTransfer = "CRYPTO_TRANSFER" // buyer's platform wallet to seller's platform wallet
	StepTypeCryptoConvert  = "CRYPTO_CONVERT"  // seller converts received crypto to EUR
	StepTypeIBANTransfer   = "IBAN_TRANSFER"   // seller withdraws EUR to their bank
	StepTypeFiatUpload     = "FIAT_UPLOAD"     // buyer uploads proof of the bank transfer
	StepTypeFiatConfirm    = "FIAT_CONFIRM"    // seller confirms receipt
)

// Step statuses
const (
	StepStatusPending    = "PENDING"
	StepStatusInProgress = "IN_PROGRESS"
	StepStatusCompleted  = "COMPLETED"
	StepStatusFailed     = "FAILED"
)

// Acting parties
const (
	PartyBuyer  = "BUYER"
	PartySeller = "SELLER"
)

// FundProtectionStep is one atomic payment action in the settlement
// sequence of a transaction. StepNumber is a contiguous sequence starting
// at 1 within its transaction, and steps complete strictly in that order.
// The full set is deleted and regenerated whenever fund protection is
// (re)initialized.
type FundProtectionStep struct {
	gorm.Model
	TransactionID uint            `gorm:"not null;index"`
	Reference     string          `gorm:"uniqueIndex;not null"`
	StepNumber    int             `gorm:"not null"`
	StepType      string          `gorm:"not null"`
	Description   string
	UserType      string          `gorm:"not null"` // BUYER or SELLER: who must act
	Status        string          `gorm:"not null;default:'PENDING'"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null"`
	Currency      string          `gorm:"not null"`
	FromWalletID  *uint
	ToWalletID    *uint
}
