package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studieportaal/regiovoorlichting-api/internal/filter"
	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	"github.com/studieportaal/regiovoorlichting-api/internal/service"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
	"github.com/studieportaal/regiovoorlichting-api/pkg/response"
)

type eventService interface {
	List(ctx context.Context, criteria filter.Criteria) ([]models.Event, error)
	Create(ctx context.Context, req service.CreateEventRequest) (models.Event, error)
	Update(ctx context.Context, req service.UpdateEventRequest) (models.Event, error)
	Delete(ctx context.Context, id int) error
}

// EventHandler exposes the event collection endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler builds a new handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param type query string false "Event type"
// @Param date query string false "Earliest date (inclusive, YYYY-MM-DD)"
// @Success 200 {array} models.Event
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	criteria := filter.Criteria{
		filter.KeyType: c.Query(filter.KeyType),
		filter.KeyDate: c.Query(filter.KeyDate),
	}
	records, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Create godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 200 {object} models.Event
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, created)
}

// Update godoc
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.UpdateEventRequest true "Full event record"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Router /api/events [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}
	updated, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete event
// @Tags Events
// @Produce json
// @Param id query int true "Event id"
// @Success 200 {object} map[string]bool
// @Router /api/events [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.Success(c)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
