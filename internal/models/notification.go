package models

import "gorm.io/gorm"

// Notification types emitted by stage transitions and step completion.
const (
	NotificationOfferReceived     = "OFFER_RECEIVED"
	NotificationCounterOffer      = "COUNTER_OFFER"
	NotificationOfferAccepted     = "OFFER_ACCEPTED"
	NotificationDocumentSigned    = "DOCUMENT_SIGNED"
	NotificationFundProtection    = "FUND_PROTECTION_STARTED"
	NotificationStepCompleted     = "STEP_COMPLETED"
	NotificationEscrowEntered     = "ESCROW_ENTERED"
	NotificationClosing           = "CLOSING"
	NotificationCompleted         = "TRANSACTION_COMPLETED"
	NotificationCancelled         = "TRANSACTION_CANCELLED"
	NotificationPropertyReviewed  = "PROPERTY_REVIEWED"
)

// Notification is an asynchronous message to a user. Delivery is
// fire-and-forget: failures are logged and never roll back the operation
// that triggered them.
type Notification struct {
	gorm.Model
	UserID        uint   `gorm:"not null;index"`
	Type          string `gorm:"not null"`
	Title         string `gorm:"not null"`
	Message       string
	Data          JSON   `gorm:"type:jsonb"`
	TransactionID *uint
	PropertyID    *uint
	Read          bool `gorm:"default:false"`
}
