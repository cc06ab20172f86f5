package handlers

import (
	"domus/internal/models"
	"domus/internal/services/kyc"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type KYCHandler struct {
	kycService kyc.Service
}

func NewKYCHandler(kycService kyc.Service) *KYCHandler {
	return &KYCHandler{kycService: kycService}
}

// Submit starts a verification for the given tier.
func (h *KYCHandler) Submit(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Tier       int    `json:"tier"`
		DocumentID string `json:"document_id"`
		ScanURL    string `json:"scan_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Tier != models.KYCTier1 && input.Tier != models.KYCTier2 {
		return utils.BadRequest(c, "tier must be 1 or 2")
	}

	v, err := h.kycService.Submit(c.Context(), claims.UserID, input.Tier, input.DocumentID, input.ScanURL)
	if err != nil {
		return utils.InternalError(c, "failed to submit verification")
	}
	return utils.Created(c, v)
}

// Status returns the user's current status for both tiers.
func (h *KYCHandler) Status(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	tier1, err := h.kycService.TierStatus(c.Context(), claims.UserID, models.KYCTier1)
	if err != nil {
		return utils.InternalError(c, "failed to read kyc status")
	}
	tier2, err := h.kycService.TierStatus(c.Context(), claims.UserID, models.KYCTier2)
	if err != nil {
		return utils.InternalError(c, "failed to read kyc status")
	}

	return utils.Success(c, fiber.Map{
		"tier1": tier1,
		"tier2": tier2,
	})
}

// UpdateStatus records a verification decision (admin only).
func (h *KYCHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	var input struct {
		Tier   int    `json:"tier"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	switch input.Status {
	case models.KYCStatusPassed, models.KYCStatusRejected, models.KYCStatusExpired:
	default:
		return utils.BadRequest(c, "status must be PASSED, REJECTED or EXPIRED")
	}

	if err := h.kycService.UpdateStatus(c.Context(), userID, input.Tier, input.Status); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"message": "status updated"})
}
