package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

// Client talks to one collection endpoint (/api/activities,
// /api/events, /api/videos) using the portal wire contract: bare
// arrays and records on success, {"error": ...} on failure, and
// {"success": true} for deletes.
type Client[T any] struct {
	baseURL    string
	collection string
	httpClient *http.Client
}

// NewClient builds a client for the named collection. A nil
// httpClient falls back to a client with a 10s timeout.
func NewClient[T any](baseURL, collection string, httpClient *http.Client) *Client[T] {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client[T]{
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: collection,
		httpClient: httpClient,
	}
}

func (c *Client[T]) endpoint() string {
	return c.baseURL + "/api/" + c.collection
}

// List fetches all records in the collection.
func (c *Client[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := c.do(ctx, http.MethodGet, c.endpoint(), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create posts a new record and returns it with its assigned id.
func (c *Client[T]) Create(ctx context.Context, record T) (T, error) {
	var created T
	err := c.do(ctx, http.MethodPost, c.endpoint(), record, &created)
	return created, err
}

// Update replaces an existing record.
func (c *Client[T]) Update(ctx context.Context, record T) (T, error) {
	var updated T
	err := c.do(ctx, http.MethodPut, c.endpoint(), record, &updated)
	return updated, err
}

// Delete removes the record with the given id.
func (c *Client[T]) Delete(ctx context.Context, id int) error {
	target := c.endpoint() + "?id=" + url.QueryEscape(strconv.Itoa(id))
	var ack struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, target, nil, &ack); err != nil {
		return err
	}
	if !ack.Success {
		return appErrors.Clone(appErrors.ErrInternal, "delete not acknowledged")
	}
	return nil
}

func (c *Client[T]) do(ctx context.Context, method, target string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "portal unreachable")
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "read response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode response")
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return appErrors.New(codeForStatus(status), status, payload.Error)
	}
	return appErrors.New(codeForStatus(status), status, fmt.Sprintf("unexpected status %d", status))
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return appErrors.ErrNotFound.Code
	case http.StatusBadRequest:
		return appErrors.ErrValidation.Code
	default:
		return appErrors.ErrInternal.Code
	}
}
