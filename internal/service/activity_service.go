package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/filter"
	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

type activityStore interface {
	List(ctx context.Context) ([]models.Activity, error)
	Create(ctx context.Context, record models.Activity) (models.Activity, error)
	Update(ctx context.Context, record models.Activity) (models.Activity, error)
	Delete(ctx context.Context, id int) error
}

// ActivityService handles activity listing and admin mutations.
type ActivityService struct {
	repo      activityStore
	engine    *filter.Engine[models.Activity]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs the service.
func NewActivityService(repo activityStore, validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		repo:      repo,
		engine:    filter.Activities(),
		validator: validate,
		logger:    logger,
	}
}

// CreateActivityRequest describes the create payload. Unknown enum values
// never reach the store; the store itself stays loosely typed.
type CreateActivityRequest struct {
	Title                string `json:"title" validate:"required"`
	Region               string `json:"region" validate:"required"`
	University           string `json:"university"`
	Date                 string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                 string `json:"time"`
	Type                 string `json:"type" validate:"omitempty,oneof=open-dag presentatie workshop proefcollege beurs"`
	StudyField           string `json:"studyField" validate:"omitempty,oneof=business law engineering medicine psychology"`
	Audience             string `json:"audience" validate:"omitempty,oneof=scholieren ouders beide"`
	Description          string `json:"description"`
	AvailableSpots       int    `json:"availableSpots" validate:"gte=0"`
	RegistrationRequired bool   `json:"registrationRequired"`
}

// UpdateActivityRequest describes the full-record update payload.
type UpdateActivityRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
	CreateActivityRequest
}

// List returns the collection filtered by the given criteria; empty criteria
// yield the full collection.
func (s *ActivityService) List(ctx context.Context, criteria filter.Criteria) ([]models.Activity, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Apply(records, criteria), nil
}

// Create validates and persists a new activity.
func (s *ActivityService) Create(ctx context.Context, req CreateActivityRequest) (models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Activity{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	created, err := s.repo.Create(ctx, req.toModel(0))
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info("activity created", zap.Int("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// Update validates and replaces an existing activity by id.
func (s *ActivityService) Update(ctx context.Context, req UpdateActivityRequest) (models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Activity{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	return s.repo.Update(ctx, req.toModel(req.ID))
}

// Delete removes an activity; absent ids succeed silently.
func (s *ActivityService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (r CreateActivityRequest) toModel(id int) models.Activity {
	return models.Activity{
		ID:                   id,
		Title:                r.Title,
		Region:               r.Region,
		University:           r.University,
		Date:                 r.Date,
		Time:                 r.Time,
		Type:                 r.Type,
		StudyField:           r.StudyField,
		Audience:             r.Audience,
		Description:          r.Description,
		AvailableSpots:       r.AvailableSpots,
		RegistrationRequired: r.RegistrationRequired,
	}
}
