package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/filter"
	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

type videoStore interface {
	List(ctx context.Context) ([]models.Video, error)
	Create(ctx context.Context, record models.Video) (models.Video, error)
	Update(ctx context.Context, record models.Video) (models.Video, error)
	Delete(ctx context.Context, id int) error
}

// VideoService handles video library listing and admin mutations.
type VideoService struct {
	repo      videoStore
	engine    *filter.Engine[models.Video]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVideoService constructs the service.
func NewVideoService(repo videoStore, validate *validator.Validate, logger *zap.Logger) *VideoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VideoService{
		repo:      repo,
		engine:    filter.Videos(),
		validator: validate,
		logger:    logger,
	}
}

// CreateVideoRequest describes the create payload.
type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Duration    string `json:"duration"`
	Category    string `json:"category" validate:"omitempty,oneof=studiekeuze business law engineering medicine psychology"`
	Thumbnail   string `json:"thumbnail" validate:"omitempty,url"`
	Description string `json:"description"`
	UploadDate  string `json:"uploadDate" validate:"omitempty,datetime=2006-01-02"`
	Views       int    `json:"views" validate:"gte=0"`
	VideoURL    string `json:"videoUrl" validate:"omitempty,url"`
}

// UpdateVideoRequest describes the full-record update payload.
type UpdateVideoRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
	CreateVideoRequest
}

// List returns the library filtered by the given criteria.
func (s *VideoService) List(ctx context.Context, criteria filter.Criteria) ([]models.Video, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Apply(records, criteria), nil
}

// Create validates and persists a new video.
func (s *VideoService) Create(ctx context.Context, req CreateVideoRequest) (models.Video, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Video{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid video payload")
	}
	created, err := s.repo.Create(ctx, req.toModel(0))
	if err != nil {
		return models.Video{}, err
	}
	s.logger.Info("video created", zap.Int("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// Update validates and replaces an existing video by id.
func (s *VideoService) Update(ctx context.Context, req UpdateVideoRequest) (models.Video, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Video{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid video payload")
	}
	return s.repo.Update(ctx, req.toModel(req.ID))
}

// Delete removes a video; absent ids succeed silently.
func (s *VideoService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (r CreateVideoRequest) toModel(id int) models.Video {
	return models.Video{
		ID:          id,
		Title:       r.Title,
		Duration:    r.Duration,
		Category:    r.Category,
		Thumbnail:   r.Thumbnail,
		Description: r.Description,
		UploadDate:  r.UploadDate,
		Views:       r.Views,
		VideoURL:    r.VideoURL,
	}
}
