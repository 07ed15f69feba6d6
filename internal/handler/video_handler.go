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

type videoService interface {
	List(ctx context.Context, criteria filter.Criteria) ([]models.Video, error)
	Create(ctx context.Context, req service.CreateVideoRequest) (models.Video, error)
	Update(ctx context.Context, req service.UpdateVideoRequest) (models.Video, error)
	Delete(ctx context.Context, id int) error
}

// VideoHandler exposes the video collection endpoints.
type VideoHandler struct {
	service videoService
}

// NewVideoHandler builds a new handler.
func NewVideoHandler(service videoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// List godoc
// @Summary List videos
// @Tags Videos
// @Produce json
// @Param category query string false "Video category"
// @Param search query string false "Case-insensitive title/description search"
// @Success 200 {array} models.Video
// @Router /api/videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	criteria := filter.Criteria{
		filter.KeyCategory: c.Query(filter.KeyCategory),
		filter.KeySearch:   c.Query(filter.KeySearch),
	}
	records, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Create godoc
// @Summary Create video
// @Tags Videos
// @Accept json
// @Produce json
// @Param payload body service.CreateVideoRequest true "Video payload"
// @Success 200 {object} models.Video
// @Router /api/videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req service.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid video payload"))
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
// @Summary Update video
// @Tags Videos
// @Accept json
// @Produce json
// @Param payload body service.UpdateVideoRequest true "Full video record"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string
// @Router /api/videos [put]
func (h *VideoHandler) Update(c *gin.Context) {
	var req service.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid video payload"))
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
// @Summary Delete video
// @Tags Videos
// @Produce json
// @Param id query int true "Video id"
// @Success 200 {object} map[string]bool
// @Router /api/videos [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
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
