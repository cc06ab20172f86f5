package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property listing statuses
const (
	PropertyStatusDraft       = "DRAFT"
	PropertyStatusUnderReview = "UNDER_REVIEW"
	PropertyStatusApproved    = "APPROVED"
	PropertyStatusRejected    = "REJECTED"
	PropertyStatusSold        = "SOLD"
)

type Property struct {
	gorm.Model
	SellerID     uint            `gorm:"not null;index"`
	Title        string          `gorm:"not null"`
	Description  string
	PropertyType string
	Street       string
	City         string
	PostalCode   string
	Country      string
	LivingArea   *int
	NumRooms     *int
	YearBuilt    *int
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
	Status       string          `gorm:"default:'DRAFT';index"`
	ReviewNote   string          // compliance reviewer's note on approval/rejection
	ReviewedAt   *time.Time
	ReviewedBy   *uint
}
