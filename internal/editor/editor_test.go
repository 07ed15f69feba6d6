package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

type activityAPIFake struct {
	records   []models.Activity
	createErr error
	updateErr error
	deleted   []int
}

func (f *activityAPIFake) List(ctx context.Context) ([]models.Activity, error) {
	out := make([]models.Activity, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *activityAPIFake) Create(ctx context.Context, record models.Activity) (models.Activity, error) {
	if f.createErr != nil {
		return models.Activity{}, f.createErr
	}
	record.ID = len(f.records) + 1
	f.records = append(f.records, record)
	return record, nil
}

func (f *activityAPIFake) Update(ctx context.Context, record models.Activity) (models.Activity, error) {
	if f.updateErr != nil {
		return models.Activity{}, f.updateErr
	}
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = record
			return record, nil
		}
	}
	return models.Activity{}, appErrors.ErrNotFound
}

func (f *activityAPIFake) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func newActivityEditor(records ...models.Activity) (*Editor[models.Activity, *models.Activity], *activityAPIFake) {
	api := &activityAPIFake{records: records}
	ed := New[models.Activity, *models.Activity](api)
	return ed, api
}

func TestEditorStartsBrowsing(t *testing.T) {
	ed, _ := newActivityEditor()

	assert.Equal(t, ModeBrowsing, ed.Mode())
	assert.Nil(t, ed.Draft())
}

func TestEditorSingleDraftInvariant(t *testing.T) {
	ed, _ := newActivityEditor(models.Activity{ID: 1, Title: "Open Dag"})
	require.NoError(t, ed.Refresh(context.Background()))

	require.NoError(t, ed.BeginCreate())
	assert.ErrorIs(t, ed.BeginCreate(), ErrDraftOpen)
	assert.ErrorIs(t, ed.BeginEdit(1), ErrDraftOpen)
}

func TestEditorBeginEditCopiesRecord(t *testing.T) {
	ed, _ := newActivityEditor(models.Activity{ID: 1, Title: "Open Dag"})
	require.NoError(t, ed.Refresh(context.Background()))

	require.NoError(t, ed.BeginEdit(1))
	require.Equal(t, ModeEditing, ed.Mode())

	ed.Draft().Title = "Open Avond"
	assert.Equal(t, "Open Dag", ed.Records()[0].Title, "draft edits must not leak into the list")
}

func TestEditorBeginEditUnknownID(t *testing.T) {
	ed, _ := newActivityEditor()
	require.NoError(t, ed.Refresh(context.Background()))

	err := ed.BeginEdit(42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Equal(t, ModeBrowsing, ed.Mode())
}

func TestEditorCancelDiscardsDraft(t *testing.T) {
	ed, api := newActivityEditor()
	require.NoError(t, ed.BeginCreate())
	ed.Draft().Title = "half-typed"

	ed.Cancel()

	assert.Equal(t, ModeBrowsing, ed.Mode())
	assert.Nil(t, ed.Draft())
	assert.Empty(t, api.records)
}

func TestEditorSubmitCreateRefreshesList(t *testing.T) {
	ed, _ := newActivityEditor()
	require.NoError(t, ed.Refresh(context.Background()))
	require.NoError(t, ed.BeginCreate())
	ed.Draft().Title = "Proefcollege Recht"

	require.NoError(t, ed.Submit(context.Background()))

	assert.Equal(t, ModeBrowsing, ed.Mode())
	assert.Nil(t, ed.Draft())
	require.Len(t, ed.Records(), 1)
	assert.Equal(t, "Proefcollege Recht", ed.Records()[0].Title)
	assert.Equal(t, 1, ed.Records()[0].ID)
}

func TestEditorSubmitUpdateReplacesRecord(t *testing.T) {
	ed, _ := newActivityEditor(models.Activity{ID: 3, Title: "Workshop"})
	require.NoError(t, ed.Refresh(context.Background()))
	require.NoError(t, ed.BeginEdit(3))
	ed.Draft().Title = "Workshop Psychologie"

	require.NoError(t, ed.Submit(context.Background()))

	require.Len(t, ed.Records(), 1)
	assert.Equal(t, "Workshop Psychologie", ed.Records()[0].Title)
}

func TestEditorFailedSubmitKeepsDraft(t *testing.T) {
	ed, api := newActivityEditor()
	api.createErr = appErrors.ErrValidation
	require.NoError(t, ed.BeginCreate())
	ed.Draft().Title = "needs a date"

	err := ed.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, ModeCreating, ed.Mode())
	require.NotNil(t, ed.Draft())
	assert.Equal(t, "needs a date", ed.Draft().Title)
}

func TestEditorSubmitWithoutDraft(t *testing.T) {
	ed, _ := newActivityEditor()

	err := ed.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEditorDeleteRequiresConfirmation(t *testing.T) {
	ed, api := newActivityEditor(models.Activity{ID: 1, Title: "Beurs"})
	require.NoError(t, ed.Refresh(context.Background()))

	err := ed.Delete(context.Background(), 1, false)

	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, api.deleted)
	assert.Len(t, ed.Records(), 1)
}

func TestEditorConfirmedDeleteRefreshes(t *testing.T) {
	ed, api := newActivityEditor(models.Activity{ID: 1, Title: "Beurs"})
	require.NoError(t, ed.Refresh(context.Background()))

	require.NoError(t, ed.Delete(context.Background(), 1, true))

	assert.Equal(t, []int{1}, api.deleted)
	assert.Empty(t, ed.Records())
}
