package service

import (
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
)

// PointsService handles read access to the points ledger
type PointsService struct {
	repo *repository.PointsRepository
}

// NewPointsService creates a new points service
func NewPointsService(repo *repository.PointsRepository) *PointsService {
	return &PointsService{repo: repo}
}

// Balance returns a user's current point balance
func (s *PointsService) Balance(userID string) (int, error) {
	return s.repo.Balance(userID)
}

// History returns a user's recent ledger entries
func (s *PointsService) History(userID string, limit int) ([]models.PointsEntry, error) {
	return s.repo.History(userID, limit)
}

// Leaderboard returns the top users by point balance
func (s *PointsService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	return s.repo.Leaderboard(limit)
}
