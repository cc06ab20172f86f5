package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Property permissions
	PermissionPropertyRead   = "property:read"
	PermissionPropertyWrite  = "property:write"
	PermissionPropertyReview = "property:review"

	// Transaction permissions
	PermissionTransactionRead  = "transaction:read"
	PermissionTransactionWrite = "transaction:write"

	// Wallet / fund-protection permissions
	PermissionWalletRead     = "wallet:read"
	PermissionWalletWrite    = "wallet:write"
	PermissionFundProtection = "fundprotection:write"

	// User management
	PermissionUserRead       = "user:read"
	PermissionChangePassword = "user:change-password"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission.
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role.
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionPropertyRead,
			PermissionPropertyWrite,
			PermissionPropertyReview,
			PermissionTransactionRead,
			PermissionTransactionWrite,
			PermissionWalletRead,
			PermissionWalletWrite,
			PermissionFundProtection,
			PermissionUserRead,
			PermissionChangePassword,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case RoleSeller:
		return []string{
			PermissionPropertyRead,
			PermissionPropertyWrite,
			PermissionTransactionRead,
			PermissionTransactionWrite,
			PermissionWalletRead,
			PermissionWalletWrite,
			PermissionFundProtection,
			PermissionUserRead,
			PermissionChangePassword,
		}
	case RoleBuyer:
		return []string{
			PermissionPropertyRead,
			PermissionTransactionRead,
			PermissionTransactionWrite,
			PermissionWalletRead,
			PermissionWalletWrite,
			PermissionFundProtection,
			PermissionUserRead,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
