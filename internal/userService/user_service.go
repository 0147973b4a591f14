package users

import (
	"fmt"

	"meme-market/internal/marketerrors"
	"meme-market/internal/models"
	"meme-market/internal/repository"
)

// UserService defines the business logic for marketplace users. The
// credit-grant operation is the only way a balance increases; debits
// happen exclusively inside the bid engine's atomic apply.
type UserService struct {
	repo repository.MarketDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.MarketDB) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all users for the mock login selection
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user by id
func (s *UserService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// SetCredits sets a user's balance to an absolute non-negative amount
func (s *UserService) SetCredits(userID string, credits int64) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	if credits < 0 {
		return models.User{}, fmt.Errorf("service: %w - credits must be non-negative", marketerrors.ErrInvalidInput)
	}

	user, err := s.repo.SetUserCredits(userID, credits)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to set credits for user %s: %w", userID, err)
	}
	return user, nil
}
