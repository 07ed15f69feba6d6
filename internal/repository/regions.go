package repository

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

// RegionRepository reads the static region reference data. Regions have no
// admin lifecycle, so the repository only exposes the read path.
type RegionRepository struct {
	path   string
	logger *zap.Logger
}

// NewRegionRepository binds the repository to its seed file.
func NewRegionRepository(path string, logger *zap.Logger) *RegionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegionRepository{path: path, logger: logger}
}

// List reads and parses the region seed file.
func (r *RegionRepository) List(ctx context.Context) ([]models.Region, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "read regions file")
	}
	var regions []models.Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "parse regions file")
	}
	return regions, nil
}
