package editor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

func TestClientListDecodesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Open Dag"}]`))
	}))
	defer srv.Close()

	client := NewClient[models.Activity](srv.URL, "activities", srv.Client())
	records, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Open Dag", records[0].Title)
}

func TestClientCreateSendsRecordAndDecodesReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var payload models.Activity
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payload.ID = 7
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewClient[models.Activity](srv.URL, "activities", srv.Client())
	created, err := client.Create(context.Background(), models.Activity{Title: "Masterclass"})

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "Masterclass", created.Title)
}

func TestClientSurfacesErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to read activities"}`))
	}))
	defer srv.Close()

	client := NewClient[models.Activity](srv.URL, "activities", srv.Client())
	_, err := client.List(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to read activities", appErrors.FromError(err).Message)
}

func TestClientDeleteChecksAcknowledgement(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotID = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient[models.Activity](srv.URL, "activities", srv.Client())
	require.NoError(t, client.Delete(context.Background(), 12))
	assert.Equal(t, "12", gotID)
}
