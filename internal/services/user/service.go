package user

import (
	"errors"
	"fmt"
	"strings"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrPhoneTaken   = errors.New("phone already registered")
	ErrInvalidRole  = errors.New("role must be buyer or seller")
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain special characters")
	ErrNotFound     = errors.New("user not found")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

type Service interface {
	Register(input RegisterInput) (*models.User, error)
	Get(userID uint) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	if userRepo == nil {
		panic("user repo is required")
	}
	return &service{userRepo: userRepo}
}

func (s *service) Register(input RegisterInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))

	if input.Role != models.RoleBuyer && input.Role != models.RoleSeller {
		return nil, ErrInvalidRole
	}
	if !validation.ValidPassword(input.Password) {
		return nil, ErrWeakPassword
	}

	if existing, err := s.userRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.userRepo.GetByPhone(input.Phone); err == nil && existing != nil {
		return nil, ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     input.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Get(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) List(limit, offset int) ([]models.User, int64, error) {
	return s.userRepo.ListPaginated(limit, offset)
}
