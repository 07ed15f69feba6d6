package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/studieportaal/regiovoorlichting-api/internal/service"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
	"github.com/studieportaal/regiovoorlichting-api/pkg/export"
	"github.com/studieportaal/regiovoorlichting-api/pkg/response"
)

type exportService interface {
	CreateJob(ctx context.Context, collection string, format export.Format) (*service.ExportJobResponse, error)
	GetJob(ctx context.Context, id string) (*service.ExportJobResponse, error)
	ResolveDownload(ctx context.Context, token string) (*service.ExportDownload, error)
}

// ExportHandler exposes the admin snapshot export endpoints.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CreateExportRequest describes the export payload.
type CreateExportRequest struct {
	Collection string `json:"collection"`
	Format     string `json:"format"`
}

// Create godoc
// @Summary Queue a collection export
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body CreateExportRequest true "Export payload"
// @Success 202 {object} service.ExportJobResponse
// @Router /api/exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload"))
		return
	}
	job, err := h.service.CreateJob(c.Request.Context(), req.Collection, export.Format(req.Format))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, job)
}

// Get godoc
// @Summary Export job status
// @Tags Exports
// @Produce json
// @Param id path string true "Export job id"
// @Success 200 {object} service.ExportJobResponse
// @Router /api/exports/{id} [get]
func (h *ExportHandler) Get(c *gin.Context) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, 200, job)
}

// Download godoc
// @Summary Download a completed export
// @Tags Exports
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} file
// @Router /api/exports/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	download, err := h.service.ResolveDownload(c.Request.Context(), c.Query("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close() //nolint:errcheck

	contentType := "text/csv"
	if download.Format == export.FormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", "attachment; filename="+download.Filename)
	c.Header("Content-Type", contentType)
	c.File(download.File.Name())
}
