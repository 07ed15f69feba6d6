package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/filter"
	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

type eventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, record models.Event) (models.Event, error)
	Update(ctx context.Context, record models.Event) (models.Event, error)
	Delete(ctx context.Context, id int) error
}

// EventService handles event calendar listing and admin mutations.
type EventService struct {
	repo      eventStore
	engine    *filter.Engine[models.Event]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventStore, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{
		repo:      repo,
		engine:    filter.Events(),
		validator: validate,
		logger:    logger,
	}
}

// CreateEventRequest describes the create payload.
type CreateEventRequest struct {
	Title           string `json:"title" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Location        string `json:"location"`
	Type            string `json:"type" validate:"omitempty,oneof=studiedag ouderavond beurs masterclass informatiesessie"`
	Description     string `json:"description"`
	Time            string `json:"time"`
	Organizer       string `json:"organizer"`
	RegistrationURL string `json:"registrationUrl"`
	Capacity        int    `json:"capacity" validate:"gte=0"`
}

// UpdateEventRequest describes the full-record update payload.
type UpdateEventRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
	CreateEventRequest
}

// List returns the calendar filtered by the given criteria.
func (s *EventService) List(ctx context.Context, criteria filter.Criteria) ([]models.Event, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Apply(records, criteria), nil
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Event{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	created, err := s.repo.Create(ctx, req.toModel(0))
	if err != nil {
		return models.Event{}, err
	}
	s.logger.Info("event created", zap.Int("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// Update validates and replaces an existing event by id.
func (s *EventService) Update(ctx context.Context, req UpdateEventRequest) (models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Event{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	return s.repo.Update(ctx, req.toModel(req.ID))
}

// Delete removes an event; absent ids succeed silently.
func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (r CreateEventRequest) toModel(id int) models.Event {
	return models.Event{
		ID:              id,
		Title:           r.Title,
		Date:            r.Date,
		Location:        r.Location,
		Type:            r.Type,
		Description:     r.Description,
		Time:            r.Time,
		Organizer:       r.Organizer,
		RegistrationURL: r.RegistrationURL,
		Capacity:        r.Capacity,
	}
}
