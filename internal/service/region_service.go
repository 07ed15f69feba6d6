package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
)

type regionStore interface {
	List(ctx context.Context) ([]models.Region, error)
}

// RegionService exposes the read-only region reference data.
type RegionService struct {
	repo   regionStore
	logger *zap.Logger
}

// NewRegionService constructs the service.
func NewRegionService(repo regionStore, logger *zap.Logger) *RegionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegionService{repo: repo, logger: logger}
}

// List returns every region.
func (s *RegionService) List(ctx context.Context) ([]models.Region, error) {
	return s.repo.List(ctx)
}
