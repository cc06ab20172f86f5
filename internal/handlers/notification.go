package handlers

import (
	"domus/internal/models"
	"domus/internal/services/notification"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the authenticated user's notifications, newest first.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	limit, offset := pagination(c)

	notifications, err := h.notificationService.ListForUser(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list notifications")
	}
	return utils.Success(c, fiber.Map{"notifications": notifications})
}

// MarkRead marks one of the user's notifications as read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid notification id")
	}

	if err := h.notificationService.MarkRead(c.Context(), id, claims.UserID); err != nil {
		return utils.NotFound(c, "notification not found")
	}
	return utils.Success(c, fiber.Map{"message": "marked read"})
}
