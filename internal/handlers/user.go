package handlers

import (
	"errors"

	"domus/internal/models"
	"domus/internal/services/user"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new buyer or seller account.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Phone == "" {
		return utils.BadRequest(c, "email, password, name and phone are required")
	}

	u, err := h.userService.Register(user.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     input.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrPhoneTaken):
			return utils.Conflict(c, "Conflict", err.Error())
		case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrWeakPassword):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "failed to register user")
		}
	}

	return utils.Created(c, userView(u))
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to load user")
	}
	return utils.Success(c, userView(u))
}

func userView(u *models.User) fiber.Map {
	return fiber.Map{
		"id":               u.ID,
		"email":            u.Email,
		"name":             u.Name,
		"phone":            u.Phone,
		"role":             u.Role,
		"status":           u.Status,
		"kyc_tier1_status": u.KYCTier1Status,
		"kyc_tier2_status": u.KYCTier2Status,
		"created_at":       u.CreatedAt,
	}
}
