package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/notification"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("property not found")
	ErrForbidden     = errors.New("actor may not modify this property")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrWrongStatus   = errors.New("property is not in the required status")
	ErrInvalidReview = errors.New("review decision must be APPROVED or REJECTED")
)

type CreateInput struct {
	SellerID     uint
	Title        string
	Description  string
	PropertyType string
	Street       string
	City         string
	PostalCode   string
	Country      string
	LivingArea   *int
	NumRooms     *int
	YearBuilt    *int
	Price        decimal.Decimal
}

// Service manages property listings and the compliance review cycle:
// DRAFT -> UNDER_REVIEW -> APPROVED or REJECTED. Only APPROVED properties
// accept offers; a completed sale moves them to SOLD.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Property, error)
	Get(ctx context.Context, id uint) (*models.Property, error)
	ListApproved(ctx context.Context, limit, offset int) ([]models.Property, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]models.Property, error)
	ListForReview(ctx context.Context, limit, offset int) ([]models.Property, error)

	// SubmitForReview moves a seller's DRAFT (or REJECTED, after fixes)
	// listing into the compliance queue.
	SubmitForReview(ctx context.Context, id, sellerID uint) (*models.Property, error)

	// Review records the compliance decision on an UNDER_REVIEW listing.
	Review(ctx context.Context, id, reviewerID uint, decision, note string) (*models.Property, error)
}

type service struct {
	repo     repositories.PropertyRepository
	notifier notification.Service
}

func NewService(repo repositories.PropertyRepository, notifier notification.Service) Service {
	if repo == nil {
		panic("property repo is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	return &service{repo: repo, notifier: notifier}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Property, error) {
	if !input.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	p := &models.Property{
		SellerID:     input.SellerID,
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
		Price:        input.Price,
		Status:       models.PropertyStatusDraft,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Property, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) ListApproved(ctx context.Context, limit, offset int) ([]models.Property, error) {
	return s.repo.ListByStatus(models.PropertyStatusApproved, limit, offset)
}

func (s *service) ListBySeller(ctx context.Context, sellerID uint) ([]models.Property, error) {
	return s.repo.ListBySeller(sellerID)
}

func (s *service) ListForReview(ctx context.Context, limit, offset int) ([]models.Property, error) {
	return s.repo.ListByStatus(models.PropertyStatusUnderReview, limit, offset)
}

func (s *service) SubmitForReview(ctx context.Context, id, sellerID uint) (*models.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, ErrForbidden
	}

	from := p.Status
	if from != models.PropertyStatusDraft && from != models.PropertyStatusRejected {
		return nil, fmt.Errorf("%w: cannot submit from %s", ErrWrongStatus, from)
	}
	if err := s.repo.UpdateStatusIf(id, from, models.PropertyStatusUnderReview, nil); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, ErrWrongStatus
		}
		return nil, err
	}
	p.Status = models.PropertyStatusUnderReview
	return p, nil
}

func (s *service) Review(ctx context.Context, id, reviewerID uint, decision, note string) (*models.Property, error) {
	if decision != models.PropertyStatusApproved && decision != models.PropertyStatusRejected {
		return nil, ErrInvalidReview
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"review_note": note,
		"reviewed_at": now,
		"reviewed_by": reviewerID,
	}
	if err := s.repo.UpdateStatusIf(id, models.PropertyStatusUnderReview, decision, updates); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: property is not under review", ErrWrongStatus)
		}
		return nil, err
	}
	p.Status = decision
	p.ReviewNote = note
	p.ReviewedAt = &now
	p.ReviewedBy = &reviewerID

	title := "Listing approved"
	msg := fmt.Sprintf("Your listing %q passed compliance review", p.Title)
	if decision == models.PropertyStatusRejected {
		title = "Listing rejected"
		msg = fmt.Sprintf("Your listing %q was rejected: %s", p.Title, note)
	}
	s.notifier.Notify(ctx, p.SellerID, models.NotificationPropertyReviewed, title, msg,
		models.NewJSON(map[string]interface{}{
			"property_id": p.ID,
			"decision":    decision,
		}))

	return p, nil
}
