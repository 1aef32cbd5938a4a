package service

import (
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
)

// BadgeService handles read access to the badge catalog and user grants
type BadgeService struct {
	repo *repository.BadgeRepository
}

// NewBadgeService creates a new badge service
func NewBadgeService(repo *repository.BadgeRepository) *BadgeService {
	return &BadgeService{repo: repo}
}

// Catalog returns all badge definitions
func (s *BadgeService) Catalog() ([]models.BadgeDefinition, error) {
	return s.repo.ListBadges()
}

// UserBadges returns the badges a user has earned, joined with their
// definitions
func (s *BadgeService) UserBadges(userID string) ([]models.BadgeDefinition, error) {
	grants, err := s.repo.ListUserBadges(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.repo.ListBadges()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.BadgeDefinition, len(catalog))
	for _, b := range catalog {
		byID[b.ID] = b
	}

	var earned []models.BadgeDefinition
	for _, g := range grants {
		if b, ok := byID[g.BadgeID]; ok {
			earned = append(earned, b)
		}
	}

	return earned, nil
}
