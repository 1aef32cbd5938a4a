package service

import (
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
)

// RewardService handles the rewards marketplace
type RewardService struct {
	repo *repository.RewardRepository
}

// NewRewardService creates a new reward service
func NewRewardService(repo *repository.RewardRepository) *RewardService {
	return &RewardService{repo: repo}
}

// Catalog returns the reward catalog
func (s *RewardService) Catalog() ([]models.Reward, error) {
	return s.repo.ListRewards()
}

// GetReward retrieves a single reward
func (s *RewardService) GetReward(id string) (*models.Reward, error) {
	return s.repo.GetByID(id)
}

// Redeem exchanges points for one unit of a reward
func (s *RewardService) Redeem(userID, rewardID string) (*models.Redemption, error) {
	return s.repo.Redeem(userID, rewardID)
}
