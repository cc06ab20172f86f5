package handlers

import (
	"domus/internal/repositories"
	"domus/internal/services/user"
	"domus/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the back-office views: user accounts and the full
// transaction ledger.
type AdminHandler struct {
	userService user.Service
	txRepo      repositories.TransactionRepository
}

func NewAdminHandler(userService user.Service, txRepo repositories.TransactionRepository) *AdminHandler {
	return &AdminHandler{userService: userService, txRepo: txRepo}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	users, total, err := h.userService.List(limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list users")
	}
	return utils.Success(c, fiber.Map{
		"users": users,
		"total": total,
	})
}

func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	txs, err := h.txRepo.ListAll(limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to list transactions")
	}
	return utils.Success(c, fiber.Map{"transactions": txs})
}
