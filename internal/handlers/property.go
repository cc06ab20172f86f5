package handlers

import (
	"errors"
	"strconv"

	"domus/internal/models"
	"domus/internal/services/property"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PropertyHandler struct {
	propertyService property.Service
}

func NewPropertyHandler(propertyService property.Service) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create adds a new listing in DRAFT for the authenticated seller.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PropertyType string `json:"property_type"`
		Street       string `json:"street"`
		City         string `json:"city"`
		PostalCode   string `json:"postal_code"`
		Country      string `json:"country"`
		LivingArea   *int   `json:"living_area"`
		NumRooms     *int   `json:"num_rooms"`
		YearBuilt    *int   `json:"year_built"`
		Price        string `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Title == "" || input.Price == "" {
		return utils.BadRequest(c, "title and price are required")
	}
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return utils.BadRequest(c, "invalid price")
	}

	p, err := h.propertyService.Create(c.Context(), property.CreateInput{
		SellerID:     claims.UserID,
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Street:       input.Street,
		City:         input.City,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		LivingArea:   input.LivingArea,
		NumRooms:     input.NumRooms,
		YearBuilt:    input.YearBuilt,
		Price:        price,
	})
	if err != nil {
		if errors.Is(err, property.ErrInvalidPrice) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "failed to create property")
	}
	return utils.Created(c, p)
}

// List returns approved listings, paginated.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	props, err := h.propertyService.ListApproved(c.Context(), limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list properties")
	}
	return utils.Success(c, fiber.Map{"properties": props})
}

// ListMine returns every listing of the authenticated seller.
func (h *PropertyHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	props, err := h.propertyService.ListBySeller(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to list properties")
	}
	return utils.Success(c, fiber.Map{"properties": props})
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid property id")
	}
	p, err := h.propertyService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return utils.NotFound(c, "property not found")
		}
		return utils.InternalError(c, "failed to load property")
	}
	return utils.Success(c, p)
}

// SubmitForReview moves a seller's listing into the compliance queue.
func (h *PropertyHandler) SubmitForReview(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid property id")
	}

	p, err := h.propertyService.SubmitForReview(c.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			return utils.NotFound(c, "property not found")
		case errors.Is(err, property.ErrForbidden):
			return utils.Forbidden(c, "not your property")
		case errors.Is(err, property.ErrWrongStatus):
			return utils.Conflict(c, "Conflict", err.Error())
		default:
			return utils.InternalError(c, "failed to submit property")
		}
	}
	return utils.Success(c, p)
}

// ListForReview returns the compliance review queue (admin only).
func (h *PropertyHandler) ListForReview(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	props, err := h.propertyService.ListForReview(c.Context(), limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list properties")
	}
	return utils.Success(c, fiber.Map{"properties": props})
}

// Review records the compliance decision (admin only).
func (h *PropertyHandler) Review(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid property id")
	}

	var input struct {
		Decision string `json:"decision"`
		Note     string `json:"note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	p, err := h.propertyService.Review(c.Context(), id, claims.UserID, input.Decision, input.Note)
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			return utils.NotFound(c, "property not found")
		case errors.Is(err, property.ErrInvalidReview):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, property.ErrWrongStatus):
			return utils.Conflict(c, "Conflict", err.Error())
		default:
			return utils.InternalError(c, "failed to review property")
		}
	}
	return utils.Success(c, p)
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
