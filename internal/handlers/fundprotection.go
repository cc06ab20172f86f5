package handlers

import (
	"errors"

	"domus/internal/models"
	"domus/internal/services/fundprotection"
	"domus/internal/services/payment"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type FundProtectionHandler struct {
	fpService fundprotection.Service
}

func NewFundProtectionHandler(fpService fundprotection.Service) *FundProtectionHandler {
	return &FundProtectionHandler{fpService: fpService}
}

// Initialize regenerates the payment step plan for a transaction in
// FUND_PROTECTION. Re-initialization with a different currency replaces the
// whole plan.
func (h *FundProtectionHandler) Initialize(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	var input struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	result, err := h.fpService.Initialize(c.Context(), id, claims.UserID, claims.Role, input.Currency)
	if err != nil {
		return fundProtectionError(c, err)
	}
	return utils.Success(c, result)
}

// Steps lists the transaction's payment steps in order.
func (h *FundProtectionHandler) Steps(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	steps, err := h.fpService.Steps(c.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		return fundProtectionError(c, err)
	}
	return utils.Success(c, fiber.Map{"steps": steps})
}

// CompleteStep marks one payment step completed. Steps complete in strict
// step-number order.
func (h *FundProtectionHandler) CompleteStep(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	stepID, err := parseID(c, "stepId")
	if err != nil {
		return utils.BadRequest(c, "invalid step id")
	}

	step, err := h.fpService.CompleteStep(c.Context(), stepID, claims.UserID)
	if err != nil {
		return fundProtectionError(c, err)
	}
	return utils.Success(c, step)
}

// fundProtectionError maps fund-protection errors onto the HTTP error
// surface.
func fundProtectionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, fundprotection.ErrNotFound):
		return utils.NotFound(c, "transaction not found")
	case errors.Is(err, fundprotection.ErrStepNotFound):
		return utils.NotFound(c, "step not found")
	case errors.Is(err, fundprotection.ErrForbidden):
		return utils.Forbidden(c, "you may not perform this action")
	case errors.Is(err, fundprotection.ErrWrongStage):
		return utils.Conflict(c, "WrongStage", "transaction is not in fund protection")
	case errors.Is(err, fundprotection.ErrNoAgreedPrice):
		return utils.PreconditionFailed(c, "no agreed price on the transaction")
	case errors.Is(err, fundprotection.ErrInvalidCurrency),
		errors.Is(err, fundprotection.ErrInvalidSplit):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, fundprotection.ErrWalletNotFound):
		return utils.PreconditionFailed(c, err.Error())
	case errors.Is(err, fundprotection.ErrOutOfOrder):
		return utils.Conflict(c, "OutOfOrder", err.Error())
	case errors.Is(err, fundprotection.ErrAlreadyCompleted):
		return utils.Conflict(c, "AlreadyCompleted", "step already completed")
	case errors.Is(err, fundprotection.ErrConflict):
		return utils.Conflict(c, "Conflict", "a concurrent operation is in progress; retry")
	case errors.Is(err, payment.ErrProviderUnavailable):
		return utils.BadGateway(c, "ProviderUnavailable", "payment provider is unavailable; retry later")
	default:
		return utils.InternalError(c, "internal error")
	}
}
