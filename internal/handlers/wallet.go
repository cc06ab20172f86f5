package handlers

import (
	"errors"

	"domus/internal/models"
	"domus/internal/services/payment"
	"domus/internal/services/wallet"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// Create opens a provider-backed wallet for the given currency.
func (h *WalletHandler) Create(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Currency == "" {
		return utils.BadRequest(c, "currency is required")
	}

	w, err := h.walletService.Create(c.Context(), claims.UserID, input.Currency)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidCurrency):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, wallet.ErrAlreadyExists):
			return utils.Conflict(c, "Conflict", err.Error())
		case errors.Is(err, payment.ErrProviderUnavailable):
			return utils.BadGateway(c, "ProviderUnavailable", "payment provider is unavailable; retry later")
		default:
			return utils.InternalError(c, "failed to create wallet")
		}
	}
	return utils.Created(c, w)
}

// List returns the authenticated user's wallets.
func (h *WalletHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	wallets, err := h.walletService.ListForUser(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to list wallets")
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

// Balance returns the provider-side balance of one wallet.
func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	balance, err := h.walletService.Balance(c.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrNotFound):
			return utils.NotFound(c, "wallet not found")
		case errors.Is(err, wallet.ErrForbidden):
			return utils.Forbidden(c, "not your wallet")
		case errors.Is(err, payment.ErrProviderUnavailable):
			return utils.BadGateway(c, "ProviderUnavailable", "payment provider is unavailable; retry later")
		default:
			return utils.InternalError(c, "failed to fetch balance")
		}
	}
	return utils.Success(c, fiber.Map{"balance": balance})
}
