package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	"github.com/studieportaal/regiovoorlichting-api/pkg/response"
)

type regionService interface {
	List(ctx context.Context) ([]models.Region, error)
}

// RegionHandler exposes the read-only region reference data.
type RegionHandler struct {
	service regionService
}

// NewRegionHandler builds a new handler.
func NewRegionHandler(service regionService) *RegionHandler {
	return &RegionHandler{service: service}
}

// List godoc
// @Summary List regions
// @Tags Regions
// @Produce json
// @Success 200 {array} models.Region
// @Router /api/regions [get]
func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, regions)
}
