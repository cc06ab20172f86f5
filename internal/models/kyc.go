package models

import "gorm.io/gorm"

// KYC verification statuses as reported by the provider.
const (
	KYCStatusPending   = "PENDING"
	KYCStatusInitiated = "INITIATED"
	KYCStatusPassed    = "PASSED"
	KYCStatusRejected  = "REJECTED"
	KYCStatusExpired   = "EXPIRED"
)

// KYC tiers. Tier 2 is required before fund protection may begin.
const (
	KYCTier1 = 1
	KYCTier2 = 2
)

type KYCVerification struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index"`
	Tier        int    `gorm:"not null;default:1"`
	Status      string `gorm:"default:'PENDING'"`
	ProviderRef string // verification id on the provider side
	DocumentID  string
	ScanURL     string
}
