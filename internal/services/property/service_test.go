package property

import (
	"context"
	"testing"

	"domus/internal/models"
	"domus/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(p *models.Property) error {
	return m.Called(p).Error(0)
}

func (m *MockPropertyRepo) GetByID(id uint) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepo) Update(p *models.Property) error {
	return m.Called(p).Error(0)
}

func (m *MockPropertyRepo) ListByStatus(status string, limit, offset int) ([]models.Property, error) {
	args := m.Called(status, limit, offset)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepo) ListBySeller(sellerID uint) ([]models.Property, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepo) UpdateStatusIf(id uint, expected, next string, updates map[string]interface{}) error {
	return m.Called(id, expected, next, updates).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID uint, ntype, title, message string, data models.JSON) {
	m.Called(ctx, userID, ntype, title, message, data)
}

func (m *MockNotifier) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotifier) MarkRead(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

func draftProperty() *models.Property {
	p := &models.Property{
		SellerID: 2,
		Title:    "Canal house",
		Status:   models.PropertyStatusDraft,
		Price:    decimal.NewFromInt(260000),
	}
	p.ID = 5
	return p
}

func TestCreate_RejectsNonPositivePrice(t *testing.T) {
	svc := NewService(new(MockPropertyRepo), new(MockNotifier))

	_, err := svc.Create(context.Background(), CreateInput{
		SellerID: 2,
		Title:    "Free house",
		Price:    decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestSubmitForReview(t *testing.T) {
	t.Run("draft moves to review", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		svc := NewService(repo, new(MockNotifier))
		repo.On("GetByID", uint(5)).Return(draftProperty(), nil)
		repo.On("UpdateStatusIf", uint(5), models.PropertyStatusDraft,
			models.PropertyStatusUnderReview, mock.Anything).Return(nil)

		p, err := svc.SubmitForReview(context.Background(), 5, 2)
		require.NoError(t, err)
		assert.Equal(t, models.PropertyStatusUnderReview, p.Status)
	})

	t.Run("rejected listing can be resubmitted", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		svc := NewService(repo, new(MockNotifier))
		p := draftProperty()
		p.Status = models.PropertyStatusRejected
		repo.On("GetByID", uint(5)).Return(p, nil)
		repo.On("UpdateStatusIf", uint(5), models.PropertyStatusRejected,
			models.PropertyStatusUnderReview, mock.Anything).Return(nil)

		_, err := svc.SubmitForReview(context.Background(), 5, 2)
		assert.NoError(t, err)
	})

	t.Run("only the owner may submit", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		svc := NewService(repo, new(MockNotifier))
		repo.On("GetByID", uint(5)).Return(draftProperty(), nil)

		_, err := svc.SubmitForReview(context.Background(), 5, 3)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("approved listing cannot be resubmitted", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		svc := NewService(repo, new(MockNotifier))
		p := draftProperty()
		p.Status = models.PropertyStatusApproved
		repo.On("GetByID", uint(5)).Return(p, nil)

		_, err := svc.SubmitForReview(context.Background(), 5, 2)
		assert.ErrorIs(t, err, ErrWrongStatus)
	})
}

func TestReview(t *testing.T) {
	underReview := func() *models.Property {
		p := draftProperty()
		p.Status = models.PropertyStatusUnderReview
		return p
	}

	t.Run("approval notifies the seller", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		notifier := new(MockNotifier)
		svc := NewService(repo, notifier)
		repo.On("GetByID", uint(5)).Return(underReview(), nil)
		repo.On("UpdateStatusIf", uint(5), models.PropertyStatusUnderReview,
			models.PropertyStatusApproved, mock.Anything).Return(nil)
		notifier.On("Notify", mock.Anything, uint(2), models.NotificationPropertyReviewed,
			mock.Anything, mock.Anything, mock.Anything).Return()

		p, err := svc.Review(context.Background(), 5, 42, models.PropertyStatusApproved, "looks fine")
		require.NoError(t, err)
		assert.Equal(t, models.PropertyStatusApproved, p.Status)
		assert.Equal(t, "looks fine", p.ReviewNote)
		notifier.AssertExpectations(t)
	})

	t.Run("invalid decision", func(t *testing.T) {
		svc := NewService(new(MockPropertyRepo), new(MockNotifier))
		_, err := svc.Review(context.Background(), 5, 42, "MAYBE", "")
		assert.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("review of a non-queued listing conflicts", func(t *testing.T) {
		repo := new(MockPropertyRepo)
		svc := NewService(repo, new(MockNotifier))
		repo.On("GetByID", uint(5)).Return(draftProperty(), nil)
		repo.On("UpdateStatusIf", uint(5), models.PropertyStatusUnderReview,
			models.PropertyStatusRejected, mock.Anything).Return(repositories.ErrStatusConflict)

		_, err := svc.Review(context.Background(), 5, 42, models.PropertyStatusRejected, "")
		assert.ErrorIs(t, err, ErrWrongStatus)
	})
}
