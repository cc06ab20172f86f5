package kyc

import (
	"context"
	"fmt"

	"domus/internal/models"
	"domus/internal/repositories"
)

// Service exposes per-user KYC tier statuses. The stage machine reads
// these as a gate and never writes them; status changes come in through
// Submit and UpdateStatus (provider callbacks or admin review).
type Service interface {
	TierStatus(ctx context.Context, userID uint, tier int) (string, error)
	Submit(ctx context.Context, userID uint, tier int, documentID, scanURL string) (*models.KYCVerification, error)
	UpdateStatus(ctx context.Context, userID uint, tier int, status string) error
}

type service struct {
	repo     repositories.KYCRepository
	userRepo repositories.UserRepository
}

func NewService(repo repositories.KYCRepository, userRepo repositories.UserRepository) Service {
	if repo == nil {
		panic("kyc repo is required")
	}
	if userRepo == nil {
		panic("user repo is required")
	}
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) TierStatus(ctx context.Context, userID uint, tier int) (string, error) {
	v, err := s.repo.LatestByUserAndTier(userID, tier)
	if err != nil {
		return "", fmt.Errorf("failed to read kyc status: %w", err)
	}
	if v == nil {
		return models.KYCStatusPending, nil
	}
	return v.Status, nil
}

func (s *service) Submit(ctx context.Context, userID uint, tier int, documentID, scanURL string) (*models.KYCVerification, error) {
	v := &models.KYCVerification{
		UserID:     userID,
		Tier:       tier,
		Status:     models.KYCStatusInitiated,
		DocumentID: documentID,
		ScanURL:    scanURL,
	}
	if err := s.repo.Create(v); err != nil {
		return nil, err
	}
	if err := s.syncUserMirror(userID, tier, v.Status); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) UpdateStatus(ctx context.Context, userID uint, tier int, status string) error {
	v, err := s.repo.LatestByUserAndTier(userID, tier)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("no tier %d verification for user %d", tier, userID)
	}
	v.Status = status
	if err := s.repo.Update(v); err != nil {
		return err
	}
	return s.syncUserMirror(userID, tier, status)
}

// syncUserMirror keeps the denormalized status columns on the user row in
// step with the latest verification.
func (s *service) syncUserMirror(userID uint, tier int, status string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	switch tier {
	case models.KYCTier1:
		user.KYCTier1Status = status
	case models.KYCTier2:
		user.KYCTier2Status = status
	}
	return s.userRepo.Update(user)
}
