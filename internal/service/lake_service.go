package service

import (
	"context"

	"github.com/ecolake/ecolake-backend-go/internal/lakes"
	"github.com/ecolake/ecolake-backend-go/internal/models"
)

// LakeService handles business logic for nearby-lake discovery
type LakeService struct {
	resolver        *lakes.Resolver
	defaultRadiusKm float64
}

// NewLakeService creates a new lake service
func NewLakeService(resolver *lakes.Resolver, defaultRadiusKm float64) *LakeService {
	return &LakeService{
		resolver:        resolver,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// NearbyLakes returns water bodies around a coordinate, applying the
// configured default radius when none is given
func (s *LakeService) NearbyLakes(ctx context.Context, coord models.Coordinate, radiusKm float64) ([]models.NearbyWaterBody, error) {
	if radiusKm == 0 {
		radiusKm = s.defaultRadiusKm
	}
	return s.resolver.ResolveNearbyLakes(ctx, coord, radiusKm)
}
