package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
	"github.com/studieportaal/regiovoorlichting-api/pkg/export"
	"github.com/studieportaal/regiovoorlichting-api/pkg/jobs"
	"github.com/studieportaal/regiovoorlichting-api/pkg/storage"
)

// Export job statuses.
const (
	ExportStatusQueued     = "queued"
	ExportStatusProcessing = "processing"
	ExportStatusCompleted  = "completed"
	ExportStatusFailed     = "failed"
)

// DatasetFunc produces a tabular snapshot of one collection.
type DatasetFunc func(ctx context.Context) (export.Dataset, error)

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// ExportJob tracks one snapshot export. Jobs live in memory only; an export
// is cheap to re-request after a restart.
type ExportJob struct {
	ID         string
	Collection string
	Format     export.Format
	Status     string
	Filename   string
	Error      string
	CreatedAt  time.Time
	FinishedAt *time.Time
}

// ExportJobResponse is the client-facing job view.
type ExportJobResponse struct {
	ID          string    `json:"id"`
	Collection  string    `json:"collection"`
	Format      string    `json:"format"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	ExpiresAt   string    `json:"expiresAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File     *os.File
	Filename string
	Format   export.Format
}

// ExportService renders admin snapshot exports on a background queue.
type ExportService struct {
	sources map[string]DatasetFunc
	store   *storage.LocalStorage
	signer  *storage.SignedURLSigner
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	metrics *MetricsService
	logger  *zap.Logger

	queue jobDispatcher

	mu   sync.Mutex
	jobs map[string]*ExportJob
}

// NewExportService constructs the service. The queue is attached afterwards
// via SetQueue because the queue handler closes over the service.
func NewExportService(sources map[string]DatasetFunc, store *storage.LocalStorage, signer *storage.SignedURLSigner, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sources: sources,
		store:   store,
		signer:  signer,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		metrics: metrics,
		logger:  logger,
		jobs:    make(map[string]*ExportJob),
	}
}

// SetQueue wires the dispatcher used for job processing.
func (s *ExportService) SetQueue(queue jobDispatcher) {
	s.queue = queue
}

// CreateJob validates the request, registers the job and enqueues rendering.
func (s *ExportService) CreateJob(ctx context.Context, collection string, format export.Format) (*ExportJobResponse, error) {
	if _, ok := s.sources[collection]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export collection %q", collection))
	}
	if !format.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "export queue not running")
	}

	job := &ExportJob{
		ID:         uuid.NewString(),
		Collection: collection,
		Format:     format,
		Status:     ExportStatusQueued,
		CreatedAt:  time.Now().UTC(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: collection}); err != nil {
		s.finish(job.ID, ExportStatusFailed, "", "failed to enqueue export")
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export")
	}
	return s.respond(job), nil
}

// Process renders one queued job. It is the queue handler.
func (s *ExportService) Process(ctx context.Context, job jobs.Job) error {
	s.mu.Lock()
	tracked, ok := s.jobs[job.ID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown export job %s", job.ID)
	}
	tracked.Status = ExportStatusProcessing
	collection := tracked.Collection
	format := tracked.Format
	s.mu.Unlock()

	dataset, err := s.sources[collection](ctx)
	if err != nil {
		s.finish(job.ID, ExportStatusFailed, "", err.Error())
		return fmt.Errorf("snapshot %s: %w", collection, err)
	}

	var rendered []byte
	switch format {
	case export.FormatPDF:
		rendered, err = s.pdf.Render(dataset, collection)
	default:
		rendered, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.finish(job.ID, ExportStatusFailed, "", err.Error())
		return fmt.Errorf("render %s: %w", collection, err)
	}

	filename := fmt.Sprintf("%s/%s.%s", collection, job.ID, format)
	if _, err := s.store.Save(filename, rendered); err != nil {
		s.finish(job.ID, ExportStatusFailed, "", err.Error())
		return fmt.Errorf("save export: %w", err)
	}

	s.finish(job.ID, ExportStatusCompleted, filename, "")
	s.logger.Info("export completed", zap.String("job_id", job.ID), zap.String("collection", collection), zap.String("format", string(format)))
	return nil
}

// GetJob returns the job view, including a signed download link when the
// rendering is done.
func (s *ExportService) GetJob(ctx context.Context, id string) (*ExportJobResponse, error) {
	s.mu.Lock()
	job, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		return nil, appErrors.ErrNotFound
	}
	snapshot := *job
	s.mu.Unlock()
	return s.respond(&snapshot), nil
}

// ResolveDownload validates the token and opens the artifact.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	id, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid download token")
	}

	s.mu.Lock()
	job, ok := s.jobs[id]
	var format export.Format
	var filename, status string
	if ok {
		format = job.Format
		filename = job.Filename
		status = job.Status
	}
	s.mu.Unlock()

	if !ok || status != ExportStatusCompleted || filename != relPath {
		return nil, appErrors.ErrNotFound
	}

	file, err := s.store.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "open export artifact")
	}
	return &ExportDownload{File: file, Filename: relPath, Format: format}, nil
}

func (s *ExportService) finish(id, status, filename, errMsg string) {
	now := time.Now().UTC()
	s.mu.Lock()
	if job, ok := s.jobs[id]; ok {
		job.Status = status
		job.Filename = filename
		job.Error = errMsg
		job.FinishedAt = &now
	}
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.ObserveExportJob(status)
	}
}

func (s *ExportService) respond(job *ExportJob) *ExportJobResponse {
	resp := &ExportJobResponse{
		ID:         job.ID,
		Collection: job.Collection,
		Format:     string(job.Format),
		Status:     job.Status,
		Error:      job.Error,
		CreatedAt:  job.CreatedAt,
	}
	if job.Status == ExportStatusCompleted && job.Filename != "" {
		token, expiresAt, err := s.signer.Generate(job.ID, job.Filename)
		if err == nil {
			resp.DownloadURL = "/api/exports/download?token=" + token
			resp.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
		} else {
			s.logger.Warn("failed to sign download url", zap.String("job_id", job.ID), zap.Error(err))
		}
	}
	return resp
}

// PortalDatasets builds the per-collection snapshot sources from the mutable
// stores.
func PortalDatasets(activities activityStore, events eventStore, videos videoStore) map[string]DatasetFunc {
	return map[string]DatasetFunc{
		"activities": func(ctx context.Context) (export.Dataset, error) {
			records, err := activities.List(ctx)
			if err != nil {
				return export.Dataset{}, err
			}
			return activityDataset(records), nil
		},
		"events": func(ctx context.Context) (export.Dataset, error) {
			records, err := events.List(ctx)
			if err != nil {
				return export.Dataset{}, err
			}
			return eventDataset(records), nil
		},
		"videos": func(ctx context.Context) (export.Dataset, error) {
			records, err := videos.List(ctx)
			if err != nil {
				return export.Dataset{}, err
			}
			return videoDataset(records), nil
		},
	}
}

func activityDataset(records []models.Activity) export.Dataset {
	headers := []string{"id", "title", "region", "university", "date", "time", "type", "studyField", "audience", "availableSpots", "registrationRequired"}
	rows := make([]map[string]string, 0, len(records))
	for _, a := range records {
		rows = append(rows, map[string]string{
			"id":                   strconv.Itoa(a.ID),
			"title":                a.Title,
			"region":               a.Region,
			"university":           a.University,
			"date":                 a.Date,
			"time":                 a.Time,
			"type":                 a.Type,
			"studyField":           a.StudyField,
			"audience":             a.Audience,
			"availableSpots":       strconv.Itoa(a.AvailableSpots),
			"registrationRequired": strconv.FormatBool(a.RegistrationRequired),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func eventDataset(records []models.Event) export.Dataset {
	headers := []string{"id", "title", "date", "location", "type", "time", "organizer", "capacity"}
	rows := make([]map[string]string, 0, len(records))
	for _, e := range records {
		rows = append(rows, map[string]string{
			"id":        strconv.Itoa(e.ID),
			"title":     e.Title,
			"date":      e.Date,
			"location":  e.Location,
			"type":      e.Type,
			"time":      e.Time,
			"organizer": e.Organizer,
			"capacity":  strconv.Itoa(e.Capacity),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func videoDataset(records []models.Video) export.Dataset {
	headers := []string{"id", "title", "duration", "category", "uploadDate", "views"}
	rows := make([]map[string]string, 0, len(records))
	for _, v := range records {
		rows = append(rows, map[string]string{
			"id":         strconv.Itoa(v.ID),
			"title":      v.Title,
			"duration":   v.Duration,
			"category":   v.Category,
			"uploadDate": v.UploadDate,
			"views":      strconv.Itoa(v.Views),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
