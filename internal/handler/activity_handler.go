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

type activityService interface {
	List(ctx context.Context, criteria filter.Criteria) ([]models.Activity, error)
	Create(ctx context.Context, req service.CreateActivityRequest) (models.Activity, error)
	Update(ctx context.Context, req service.UpdateActivityRequest) (models.Activity, error)
	Delete(ctx context.Context, id int) error
}

// ActivityHandler exposes the activity collection endpoints.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler builds a new handler.
func NewActivityHandler(service activityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List godoc
// @Summary List activities
// @Tags Activities
// @Produce json
// @Param region query string false "Region code"
// @Param studyField query string false "Study field"
// @Param type query string false "Activity type"
// @Param audience query string false "Audience"
// @Param date query string false "Earliest date (inclusive, YYYY-MM-DD)"
// @Success 200 {array} models.Activity
// @Router /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	criteria := filter.Criteria{
		filter.KeyRegion:     c.Query(filter.KeyRegion),
		filter.KeyStudyField: c.Query(filter.KeyStudyField),
		filter.KeyType:       c.Query(filter.KeyType),
		filter.KeyAudience:   c.Query(filter.KeyAudience),
		filter.KeyDate:       c.Query(filter.KeyDate),
	}
	records, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Create godoc
// @Summary Create activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body service.CreateActivityRequest true "Activity payload"
// @Success 200 {object} models.Activity
// @Router /api/activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload"))
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
// @Summary Update activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body service.UpdateActivityRequest true "Full activity record"
// @Success 200 {object} models.Activity
// @Failure 404 {object} map[string]string
// @Router /api/activities [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload"))
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
// @Summary Delete activity
// @Tags Activities
// @Produce json
// @Param id query int true "Activity id"
// @Success 200 {object} map[string]bool
// @Router /api/activities [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		// mirrors the portal contract: an unparseable id deletes nothing
		// and still acknowledges success
		response.Success(c)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
