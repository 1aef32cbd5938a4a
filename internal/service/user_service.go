package service

import (
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
)

// UserService handles user profiles
type UserService struct {
	users  *repository.UserRepository
	points *repository.PointsRepository
}

// NewUserService creates a new user service
func NewUserService(users *repository.UserRepository, points *repository.PointsRepository) *UserService {
	return &UserService{users: users, points: points}
}

// UserProfile is a user joined with their current point balance
type UserProfile struct {
	models.User
	Points int `json:"points"`
}

// Profile returns a user's profile, or nil when the user is unknown
func (s *UserService) Profile(userID string) (*UserProfile, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	balance, err := s.points.Balance(userID)
	if err != nil {
		return nil, err
	}

	return &UserProfile{User: *user, Points: balance}, nil
}

// SyncProfile creates or refreshes a user's profile row
func (s *UserService) SyncProfile(userID, email, displayName string) error {
	return s.users.Upsert(&models.User{
		ID:          userID,
		Email:       email,
		DisplayName: displayName,
	})
}
