// Package routes wires the HTTP surface onto the fiber app.
package routes

import (
	"domus/internal/handlers"
	"domus/internal/middleware"
	"domus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every handler needed by the router.
type Handlers struct {
	Auth           *handlers.AuthHandler
	User           *handlers.UserHandler
	Property       *handlers.PropertyHandler
	Transaction    *handlers.TransactionHandler
	FundProtection *handlers.FundProtectionHandler
	Wallet         *handlers.WalletHandler
	KYC            *handlers.KYCHandler
	Document       *handlers.DocumentHandler
	Notification   *handlers.NotificationHandler
	Admin          *handlers.AdminHandler
}

// SetupRoutes registers every route group.
func SetupRoutes(app *fiber.App, h Handlers, authMW *middleware.AuthMiddleware) {
	app.Get("/health", handlers.HealthCheck)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Welcome to the Domus API!") })

	api := app.Group("/api")
	api.Post("/register", h.User.Register)
	api.Post("/login", h.Auth.Login)
	api.Post("/refresh", h.Auth.Refresh)

	authenticated := api.Group("/", authMW.Handler)

	// Account
	authenticated.Get("/me", h.User.Me)
	authenticated.Post("/logout", h.Auth.Logout)
	authenticated.Post("/change-password", h.Auth.ChangePassword)

	// KYC
	kyc := authenticated.Group("/kyc")
	kyc.Post("/", h.KYC.Submit)
	kyc.Get("/status", h.KYC.Status)

	// Properties
	properties := authenticated.Group("/properties")
	properties.Get("/", middleware.HasPermission(models.PermissionPropertyRead), h.Property.List)
	properties.Post("/", middleware.HasPermission(models.PermissionPropertyWrite), h.Property.Create)
	properties.Get("/mine", middleware.HasPermission(models.PermissionPropertyWrite), h.Property.ListMine)
	properties.Get("/:id", middleware.HasPermission(models.PermissionPropertyRead), h.Property.Get)
	properties.Post("/:id/submit", middleware.HasPermission(models.PermissionPropertyWrite), h.Property.SubmitForReview)

	// Transactions and the stage machine
	transactions := authenticated.Group("/transactions", middleware.HasPermission(models.PermissionTransactionRead))
	transactions.Get("/", h.Transaction.List)
	transactions.Post("/", middleware.HasPermission(models.PermissionTransactionWrite), h.Transaction.MakeOffer)
	transactions.Get("/:id", h.Transaction.Get)
	transactions.Post("/:id/transition", middleware.HasPermission(models.PermissionTransactionWrite), h.Transaction.Transition)
	transactions.Get("/:id/offers", h.Transaction.OfferHistory)

	// Documents
	transactions.Get("/:id/documents", h.Document.List)
	transactions.Post("/:id/documents", middleware.HasPermission(models.PermissionTransactionWrite), h.Document.Upload)

	// Fund protection
	fp := authenticated.Group("/transactions/:id/fund-protection", middleware.HasPermission(models.PermissionFundProtection))
	fp.Post("/", h.FundProtection.Initialize)
	fp.Get("/steps", h.FundProtection.Steps)
	authenticated.Post("/fund-protection/steps/:stepId/complete",
		middleware.HasPermission(models.PermissionFundProtection), h.FundProtection.CompleteStep)

	// Wallets
	wallets := authenticated.Group("/wallets")
	wallets.Get("/", middleware.HasPermission(models.PermissionWalletRead), h.Wallet.List)
	wallets.Post("/", middleware.HasPermission(models.PermissionWalletWrite), h.Wallet.Create)
	wallets.Get("/:id/balance", middleware.HasPermission(models.PermissionWalletRead), h.Wallet.Balance)

	// Notifications
	notifications := authenticated.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Post("/:id/read", h.Notification.MarkRead)

	// Admin back office
	admin := authenticated.Group("/admin", middleware.AdminOnly)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/transactions", h.Admin.ListTransactions)
	admin.Get("/properties/review", h.Property.ListForReview)
	admin.Post("/properties/:id/review", h.Property.Review)
	admin.Post("/kyc/:userId/status", h.KYC.UpdateStatus)
	admin.Get("/cache/stats", handlers.CacheStats)
}
