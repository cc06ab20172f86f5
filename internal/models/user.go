package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Email               string `gorm:"uniqueIndex;not null"`
	Password            string `gorm:"not null"`
	Name                string `gorm:"not null"`
	Phone               string `gorm:"uniqueIndex;not null"`
	Role                string `gorm:"default:'buyer'"`
	Status              string `gorm:"default:'active'"`
	KYCTier1Status      string `gorm:"default:'PENDING'"` // mirror of latest tier-1 verification
	KYCTier2Status      string `gorm:"default:'PENDING'"` // mirror of latest tier-2 verification
	LastLoginAt         time.Time
	LastLoginIP         string
	FailedLoginAttempts int `gorm:"default:0"`
	AccountLockoutUntil *time.Time
	TokenVersion        int `gorm:"default:1"`
}
