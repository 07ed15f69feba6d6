package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

func newActivityCollection(t *testing.T, seed []models.Activity) *Collection[models.Activity, *models.Activity] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	data, err := json.MarshalIndent(seed, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return NewCollection[models.Activity](path, nil)
}

func TestCreateAssignsFirstID(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{})

	created, err := store.Create(context.Background(), models.Activity{Title: "Open Dag"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{
		{ID: 3, Title: "a"},
		{ID: 7, Title: "b"},
		{ID: 5, Title: "c"},
	})

	created, err := store.Create(context.Background(), models.Activity{Title: "d"})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}

func TestCreateIgnoresCallerID(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{{ID: 2, Title: "a"}})

	created, err := store.Create(context.Background(), models.Activity{ID: 99, Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestCreatePersistsRecord(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{})

	created, err := store.Create(context.Background(), models.Activity{
		Title:          "Proefcollege Recht",
		Region:         "utrecht",
		StudyField:     models.StudyFieldLaw,
		AvailableSpots: 40,
	})
	require.NoError(t, err)

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])
}

func TestUpdateReplacesInPlace(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c"},
	})

	updated, err := store.Update(context.Background(), models.Activity{ID: 2, Title: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "b2", updated.Title)

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{listed[0].ID, listed[1].ID, listed[2].ID})
	assert.Equal(t, "b2", listed[1].Title)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{{ID: 1, Title: "a"}})

	_, err := store.Update(context.Background(), models.Activity{ID: 42, Title: "x"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "a", listed[0].Title)
}

func TestDeleteRemovesRecord(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	})

	require.NoError(t, store.Delete(context.Background(), 1))

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].ID)
}

func TestDeleteAbsentIDIsIdempotent(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{{ID: 1, Title: "a"}})

	require.NoError(t, store.Delete(context.Background(), 99))

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestDeletedMaxIDIsReassigned(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	})

	require.NoError(t, store.Delete(context.Background(), 2))
	created, err := store.Create(context.Background(), models.Activity{Title: "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestListMissingFile(t *testing.T) {
	store := NewCollection[models.Activity](filepath.Join(t.TempDir(), "missing.json"), nil)

	_, err := store.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStorageUnavailable.Code, appErrors.FromError(err).Code)
}

func TestListCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := NewCollection[models.Activity](path, nil)

	_, err := store.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStorageUnavailable.Code, appErrors.FromError(err).Code)
}

func TestPersistedFileIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	store := NewCollection[models.Activity](path, nil)

	_, err := store.Create(context.Background(), models.Activity{Title: "a"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	store := newActivityCollection(t, []models.Activity{})

	const writers = 8
	ids := make(chan int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := store.Create(context.Background(), models.Activity{Title: "race"})
			require.NoError(t, err)
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)
}
