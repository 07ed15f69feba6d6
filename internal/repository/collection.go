package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

// Collection is a file-backed store for one record kind. The backing file
// holds a pretty-printed JSON array and is exclusively owned by this
// instance: every mutation is a full read-modify-write of the file and all
// mutations serialize through the collection mutex, so two interleaved
// writers can never both observe the same max id. Reads always go to disk;
// no state is cached between requests.
type Collection[T any, PT interface {
	*T
	models.Identifiable
}] struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewCollection binds a store to its backing file.
func NewCollection[T any, PT interface {
	*T
	models.Identifiable
}](path string, logger *zap.Logger) *Collection[T, PT] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T, PT]{path: path, logger: logger}
}

// List reads and parses the entire backing file.
func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	return c.read()
}

// Create assigns the next id (max existing + 1, or 1 for an empty
// collection), appends the record and persists the full collection. Any
// caller-supplied id is overwritten.
func (c *Collection[T, PT]) Create(ctx context.Context, record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		var zero T
		return zero, err
	}

	maxID := 0
	for i := range records {
		if id := PT(&records[i]).GetID(); id > maxID {
			maxID = id
		}
	}
	PT(&record).SetID(maxID + 1)

	records = append(records, record)
	if err := c.persist(records); err != nil {
		var zero T
		return zero, err
	}
	c.logger.Debug("record created", zap.String("file", c.path), zap.Int("id", maxID+1))
	return record, nil
}

// Update replaces the entry whose id matches the record, preserving its
// position. A miss returns NotFound and leaves the file untouched.
func (c *Collection[T, PT]) Update(ctx context.Context, record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		var zero T
		return zero, err
	}

	id := PT(&record).GetID()
	index := -1
	for i := range records {
		if PT(&records[i]).GetID() == id {
			index = i
			break
		}
	}
	if index == -1 {
		var zero T
		return zero, appErrors.ErrNotFound
	}

	records[index] = record
	if err := c.persist(records); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Delete removes every entry matching id and persists the filtered
// collection. Deleting an absent id is a successful no-op.
func (c *Collection[T, PT]) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}

	kept := records[:0]
	for i := range records {
		if PT(&records[i]).GetID() != id {
			kept = append(kept, records[i])
		}
	}
	return c.persist(kept)
}

func (c *Collection[T, PT]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "read collection file")
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "parse collection file")
	}
	return records, nil
}

func (c *Collection[T, PT]) persist(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode collection")
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "write collection file")
	}
	return nil
}
