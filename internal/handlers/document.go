package handlers

import (
	"errors"

	"domus/internal/models"
	"domus/internal/services/document"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	docService document.Service
}

func NewDocumentHandler(docService document.Service) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Upload records a document against a transaction. The file itself is
// uploaded to external storage by the client; only the reference arrives
// here.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	var input struct {
		Type string `json:"type"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Type == "" || input.URL == "" {
		return utils.BadRequest(c, "type and url are required")
	}

	doc, err := h.docService.Upload(c.Context(), id, claims.UserID, claims.Role, input.Type, input.Name, input.URL)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrNotFound):
			return utils.NotFound(c, "transaction not found")
		case errors.Is(err, document.ErrForbidden):
			return utils.Forbidden(c, "not a party to this transaction")
		case errors.Is(err, document.ErrInvalidType):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "failed to record document")
		}
	}
	return utils.Created(c, doc)
}

// List returns the documents attached to a transaction.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	docs, err := h.docService.ListByTransaction(c.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrNotFound):
			return utils.NotFound(c, "transaction not found")
		case errors.Is(err, document.ErrForbidden):
			return utils.Forbidden(c, "not a party to this transaction")
		default:
			return utils.InternalError(c, "failed to list documents")
		}
	}
	return utils.Success(c, fiber.Map{"documents": docs})
}
