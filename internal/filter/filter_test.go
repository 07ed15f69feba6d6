package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
)

func TestConjunction(t *testing.T) {
	records := []models.Activity{
		{ID: 1, Region: "a", Type: "x"},
		{ID: 2, Region: "a", Type: "y"},
		{ID: 3, Region: "b", Type: "x"},
	}

	result := Activities().Apply(records, Criteria{KeyRegion: "a", KeyType: "x"})
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestDateLowerBoundInclusive(t *testing.T) {
	records := []models.Activity{
		{ID: 1, Date: "2026-01-01"},
		{ID: 2, Date: "2026-06-01"},
		{ID: 3, Date: "2026-03-01"},
	}

	result := Activities().Apply(records, Criteria{KeyDate: "2026-03-01"})
	require.Len(t, result, 2)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 3, result[1].ID)
}

func TestEmptyValuesMeanNoConstraint(t *testing.T) {
	records := []models.Activity{
		{ID: 1, Region: "a"},
		{ID: 2, Region: "b"},
	}

	result := Activities().Apply(records, Criteria{KeyRegion: "", KeyType: ""})
	assert.Len(t, result, 2)
}

func TestClearRestoresFullList(t *testing.T) {
	records := []models.Activity{
		{ID: 1, Region: "a"},
		{ID: 2, Region: "b"},
		{ID: 3, Region: "a"},
	}
	criteria := Criteria{KeyRegion: "a", KeyDate: "2026-01-01"}

	engine := Activities()
	require.Len(t, engine.Apply(records, criteria), 0)

	criteria.Clear()
	assert.False(t, criteria.Active())

	result := engine.Apply(records, criteria)
	require.Len(t, result, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{result[0].ID, result[1].ID, result[2].ID})
}

func TestApplyIsStableAndDeterministic(t *testing.T) {
	records := []models.Activity{
		{ID: 4, Region: "a"},
		{ID: 2, Region: "a"},
		{ID: 9, Region: "b"},
		{ID: 1, Region: "a"},
	}
	criteria := Criteria{KeyRegion: "a"}

	engine := Activities()
	first := engine.Apply(records, criteria)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Apply(records, criteria))
	}
	require.Len(t, first, 3)
	assert.Equal(t, []int{4, 2, 1}, []int{first[0].ID, first[1].ID, first[2].ID})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := []models.Activity{
		{ID: 1, Region: "b"},
		{ID: 2, Region: "a"},
	}

	_ = Activities().Apply(records, Criteria{KeyRegion: "a"})
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)
}

func TestVideoSearchMatchesTitleOrDescription(t *testing.T) {
	records := []models.Video{
		{ID: 1, Title: "Studeren in Delft", Description: "techniek"},
		{ID: 2, Title: "Recht", Description: "Alles over STUDEREN in Leiden"},
		{ID: 3, Title: "Geneeskunde", Description: "numerus fixus"},
	}

	result := Videos().Apply(records, Criteria{KeySearch: "studeren"})
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, 2, result[1].ID)
}

func TestVideoCategoryAndSearchCombine(t *testing.T) {
	records := []models.Video{
		{ID: 1, Title: "Studeren in Delft", Category: models.StudyFieldEngineering},
		{ID: 2, Title: "Studeren in Leiden", Category: models.StudyFieldLaw},
	}

	result := Videos().Apply(records, Criteria{KeySearch: "studeren", KeyCategory: models.StudyFieldLaw})
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestEventTypeFilter(t *testing.T) {
	records := []models.Event{
		{ID: 1, Type: models.EventTypeStudiedag},
		{ID: 2, Type: models.EventTypeOuderavond},
	}

	result := Events().Apply(records, Criteria{KeyType: models.EventTypeOuderavond})
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	records := []models.Event{{ID: 1, Type: models.EventTypeBeurs}}

	result := Events().Apply(records, Criteria{"bogus": "value"})
	assert.Len(t, result, 1)
}
