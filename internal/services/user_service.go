package services

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"github.com/yukikurage/greenxp-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = errors.New("username required")
	ErrEmailRequired    = errors.New("email required")
	ErrInvalidRole      = errors.New("role must be user or admin")
	ErrUserNotFound     = errors.New("user not found")
)

// UserService handles user registration and the per-user summary
type UserService struct {
	userRepo        repository.UserRepository
	userMissionRepo repository.UserMissionRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, userMissionRepo repository.UserMissionRepository) *UserService {
	return &UserService{
		userRepo:        userRepo,
		userMissionRepo: userMissionRepo,
	}
}

// CreateUserInput represents the information needed to register a user
type CreateUserInput struct {
	Username string
	Email    string
	Role     models.UserRole
}

// CreateUser registers a user; the role defaults to user
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// ListUsers returns every registered user
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user")
	}
	return user, nil
}

// Summary returns total XP and the public/accepted/completed partition counts
func (s *UserService) Summary(userID uint64) (*repository.UserSummary, error) {
	summary, err := s.userMissionRepo.Summary(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build summary")
	}
	return summary, nil
}
