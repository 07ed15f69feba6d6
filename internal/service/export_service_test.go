package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
	"github.com/studieportaal/regiovoorlichting-api/pkg/export"
	"github.com/studieportaal/regiovoorlichting-api/pkg/jobs"
	"github.com/studieportaal/regiovoorlichting-api/pkg/storage"
)

// inlineDispatcher runs jobs synchronously, which keeps the tests
// deterministic.
type inlineDispatcher struct {
	svc *ExportService
}

func (d *inlineDispatcher) Enqueue(job jobs.Job) error {
	return d.svc.Process(context.Background(), job)
}

func newExportService(t *testing.T) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Minute)

	activities := &activityStoreMock{records: []models.Activity{
		{ID: 1, Title: "Open Dag TU", Region: "eindhoven", Date: "2026-04-01"},
		{ID: 2, Title: "Workshop Recht", Region: "utrecht", Date: "2026-05-01"},
	}}
	sources := PortalDatasets(activities, &eventStoreStub{}, &videoStoreStub{})

	svc := NewExportService(sources, store, signer, nil, nil)
	svc.SetQueue(&inlineDispatcher{svc: svc})
	return svc
}

type eventStoreStub struct{}

func (eventStoreStub) List(ctx context.Context) ([]models.Event, error) { return nil, nil }
func (eventStoreStub) Create(ctx context.Context, r models.Event) (models.Event, error) {
	return r, nil
}
func (eventStoreStub) Update(ctx context.Context, r models.Event) (models.Event, error) {
	return r, nil
}
func (eventStoreStub) Delete(ctx context.Context, id int) error { return nil }

type videoStoreStub struct{}

func (videoStoreStub) List(ctx context.Context) ([]models.Video, error) { return nil, nil }
func (videoStoreStub) Create(ctx context.Context, r models.Video) (models.Video, error) {
	return r, nil
}
func (videoStoreStub) Update(ctx context.Context, r models.Video) (models.Video, error) {
	return r, nil
}
func (videoStoreStub) Delete(ctx context.Context, id int) error { return nil }

func TestExportServiceCSVRoundTrip(t *testing.T) {
	svc := newExportService(t)

	created, err := svc.CreateJob(context.Background(), "activities", export.FormatCSV)
	require.NoError(t, err)

	status, err := svc.GetJob(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, ExportStatusCompleted, status.Status)
	require.NotEmpty(t, status.DownloadURL)

	token := strings.TrimPrefix(status.DownloadURL, "/api/exports/download?token=")
	download, err := svc.ResolveDownload(context.Background(), token)
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Open Dag TU")
	assert.Contains(t, string(content), "Workshop Recht")
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportService(t)

	created, err := svc.CreateJob(context.Background(), "activities", export.FormatPDF)
	require.NoError(t, err)

	status, err := svc.GetJob(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusCompleted, status.Status)
}

func TestExportServiceRejectsUnknownCollection(t *testing.T) {
	svc := newExportService(t)

	_, err := svc.CreateJob(context.Background(), "regions", export.FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newExportService(t)

	_, err := svc.CreateJob(context.Background(), "activities", export.Format("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceUnknownJob(t *testing.T) {
	svc := newExportService(t)

	_, err := svc.GetJob(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsTamperedToken(t *testing.T) {
	svc := newExportService(t)

	created, err := svc.CreateJob(context.Background(), "activities", export.FormatCSV)
	require.NoError(t, err)
	status, err := svc.GetJob(context.Background(), created.ID)
	require.NoError(t, err)

	token := strings.TrimPrefix(status.DownloadURL, "/api/exports/download?token=")
	_, err = svc.ResolveDownload(context.Background(), token+"tampered")
	require.Error(t, err)
}
