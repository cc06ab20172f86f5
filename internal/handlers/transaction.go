package handlers

import (
	"errors"

	"domus/internal/models"
	"domus/internal/services/stage"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	stageService stage.Service
}

func NewTransactionHandler(stageService stage.Service) *TransactionHandler {
	return &TransactionHandler{stageService: stageService}
}

// MakeOffer creates a transaction in OFFER on an approved property.
func (h *TransactionHandler) MakeOffer(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		PropertyID       uint   `json:"property_id"`
		Amount           string `json:"amount"`
		Message          string `json:"message"`
		PaymentMethod    string `json:"payment_method"`
		CryptoPercentage int    `json:"crypto_percentage"`
		FiatPercentage   int    `json:"fiat_percentage"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	tx, err := h.stageService.MakeOffer(c.Context(), stage.OfferRequest{
		PropertyID:       input.PropertyID,
		BuyerID:          claims.UserID,
		Amount:           amount,
		Message:          input.Message,
		PaymentMethod:    input.PaymentMethod,
		CryptoPercentage: input.CryptoPercentage,
		FiatPercentage:   input.FiatPercentage,
	})
	if err != nil {
		return stageError(c, err)
	}
	return utils.Created(c, tx)
}

// Transition applies one lifecycle action to a transaction.
func (h *TransactionHandler) Transition(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	var input struct {
		Action   string `json:"action"`
		Amount   string `json:"amount"`
		Message  string `json:"message"`
		Currency string `json:"currency"`
		Reason   string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Action == "" {
		return utils.BadRequest(c, "action is required")
	}

	amount := decimal.Zero
	if input.Amount != "" {
		amount, err = decimal.NewFromString(input.Amount)
		if err != nil {
			return utils.BadRequest(c, "invalid amount")
		}
	}

	result, err := h.stageService.Transition(c.Context(), stage.TransitionRequest{
		TransactionID: id,
		ActorID:       claims.UserID,
		ActorRole:     claims.Role,
		Action:        stage.Action(input.Action),
		Amount:        amount,
		Message:       input.Message,
		Currency:      input.Currency,
		Reason:        input.Reason,
	})
	if err != nil {
		return stageError(c, err)
	}
	return utils.Success(c, result)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	tx, err := h.stageService.Get(c.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		return stageError(c, err)
	}
	return utils.Success(c, tx)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	limit, offset := pagination(c)

	txs, err := h.stageService.ListForUser(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list transactions")
	}
	return utils.Success(c, fiber.Map{"transactions": txs})
}

// OfferHistory returns the negotiation history of a transaction.
func (h *TransactionHandler) OfferHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	offers, err := h.stageService.OfferHistory(c.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		return stageError(c, err)
	}
	return utils.Success(c, fiber.Map{"offers": offers})
}

// stageError maps stage machine errors onto the HTTP error surface. The
// wrapped message is carried through so the UI can name the failed gate.
func stageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, stage.ErrNotFound):
		return utils.NotFound(c, "transaction not found")
	case errors.Is(err, stage.ErrForbidden):
		return utils.Forbidden(c, "you may not perform this action")
	case errors.Is(err, stage.ErrPreconditionFailed):
		return utils.PreconditionFailed(c, err.Error())
	case errors.Is(err, stage.ErrConflict):
		return utils.Conflict(c, "Conflict", err.Error())
	case errors.Is(err, stage.ErrAlreadyApplied):
		return utils.Conflict(c, "AlreadyApplied", err.Error())
	case errors.Is(err, stage.ErrInvalidAction), errors.Is(err, stage.ErrInvalidOffer):
		return utils.BadRequest(c, err.Error())
	default:
		return fundProtectionError(c, err)
	}
}
