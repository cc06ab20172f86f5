// Package main is the entry point for the Domus API server. It initializes
// the databases, wires the dependency graph, and starts the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"domus/internal/config"
	"domus/internal/handlers"
	"domus/internal/middleware"
	"domus/internal/repositories"
	"domus/internal/routes"
	"domus/internal/services/auth"
	"domus/internal/services/document"
	"domus/internal/services/fundprotection"
	"domus/internal/services/kyc"
	"domus/internal/services/notification"
	"domus/internal/services/payment"
	"domus/internal/services/property"
	"domus/internal/services/stage"
	"domus/internal/services/user"
	"domus/internal/services/wallet"
	"domus/internal/utils/lock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize databases: %v", err)
	}
	defer closeConnections()

	if err := repositories.CacheService.HealthCheck(context.Background()); err != nil {
		log.Printf("redis unavailable at startup: %v", err)
	}

	app := buildApp()

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

// buildApp wires the dependency graph bottom-up: repositories, services,
// handlers, routes.
func buildApp() *fiber.App {
	db := repositories.DB
	cacheService := repositories.CacheService

	userRepo := repositories.NewUserRepository(db, cacheService)
	propertyRepo := repositories.NewPropertyRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	stepRepo := repositories.NewStepRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	provider := payment.NewClient(payment.Config{
		BaseURL:   config.GetEnv("PAYMENT_API_URL", "http://localhost:4000"),
		APIKey:    config.GetEnv("PAYMENT_API_KEY", ""),
		APISecret: config.GetEnv("PAYMENT_API_SECRET", ""),
		Timeout:   config.GetDurationEnv("PAYMENT_API_TIMEOUT", 10*time.Second),
	})
	locker := lock.NewRedisLock(cacheService.Client())

	notificationSvc := notification.NewService(notificationRepo)
	authSvc := auth.NewService(userRepo)
	userSvc := user.NewService(userRepo)
	kycSvc := kyc.NewService(kycRepo, userRepo)
	propertySvc := property.NewService(propertyRepo, notificationSvc)
	walletSvc := wallet.NewService(walletRepo, provider)
	docSvc := document.NewService(docRepo, txRepo)
	fpSvc := fundprotection.NewService(txRepo, stepRepo, walletRepo, provider, notificationSvc, locker)
	stageSvc := stage.NewService(txRepo, propertyRepo, offerRepo, docRepo, stepRepo, kycSvc, fpSvc, notificationSvc, locker)

	h := routes.Handlers{
		Auth:           handlers.NewAuthHandler(authSvc),
		User:           handlers.NewUserHandler(userSvc),
		Property:       handlers.NewPropertyHandler(propertySvc),
		Transaction:    handlers.NewTransactionHandler(stageSvc),
		FundProtection: handlers.NewFundProtectionHandler(fpSvc),
		Wallet:         handlers.NewWalletHandler(walletSvc),
		KYC:            handlers.NewKYCHandler(kycSvc),
		Document:       handlers.NewDocumentHandler(docSvc),
		Notification:   handlers.NewNotificationHandler(notificationSvc),
		Admin:          handlers.NewAdminHandler(userSvc, txRepo),
	}
	authMW := middleware.NewAuthMiddleware(authSvc)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app, h, authMW)
	return app
}

func closeConnections() {
	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}
	}
	if repositories.CacheService != nil {
		if err := repositories.CacheService.Close(); err != nil {
			log.Printf("failed to close redis connection: %v", err)
		}
	}
}
