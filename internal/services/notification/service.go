package notification

import (
	"context"
	"log"

	"domus/internal/models"
	"domus/internal/repositories"
)

// Service persists and lists user notifications. Notify is fire-and-forget:
// a delivery failure is logged and never propagated, so it cannot roll back
// the state transition that triggered it.
type Service interface {
	Notify(ctx context.Context, userID uint, ntype, title, message string, data models.JSON)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
}

type service struct {
	repo repositories.NotificationRepository
}

func NewService(repo repositories.NotificationRepository) Service {
	if repo == nil {
		panic("notification repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uint, ntype, title, message string, data models.JSON) {
	n := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if txID, ok := data["transaction_id"].(uint); ok {
		n.TransactionID = &txID
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("failed to notify user %d (%s): %v", userID, ntype, err)
	}
}

func (s *service) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.repo.ListByUser(userID, limit, offset)
}

func (s *service) MarkRead(ctx context.Context, id, userID uint) error {
	return s.repo.MarkRead(id, userID)
}
