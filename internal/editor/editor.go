package editor

import (
	"context"

	"github.com/studieportaal/regiovoorlichting-api/internal/models"
	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

// Mode describes what the editor is currently doing.
type Mode string

const (
	ModeBrowsing Mode = "browsing"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

var (
	// ErrDraftOpen is returned when a new draft is requested while
	// another draft is still open.
	ErrDraftOpen = appErrors.New("DRAFT_OPEN", 409, "finish or cancel the current draft first")

	// ErrConfirmationRequired is returned when a delete is attempted
	// without explicit confirmation.
	ErrConfirmationRequired = appErrors.New("CONFIRMATION_REQUIRED", 400, "delete requires confirmation")
)

// API is the collection operations the editor needs. Satisfied by
// Client for remote use and by the service layer in tests.
type API[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id int) error
}

// Editor drives the admin create/edit/delete workflow for one
// collection. It holds the loaded records, at most one open draft,
// and refreshes from the API after every successful mutation. It is
// not safe for concurrent use; each admin session owns its own
// Editor.
type Editor[T any, PT interface {
	*T
	models.Identifiable
}] struct {
	api     API[T]
	records []T
	mode    Mode
	draft   *T
}

// New builds an editor in browsing mode with no records loaded.
// Call Refresh before presenting the list.
func New[T any, PT interface {
	*T
	models.Identifiable
}](api API[T]) *Editor[T, PT] {
	return &Editor[T, PT]{api: api, mode: ModeBrowsing}
}

// Refresh reloads the record list from the API. The current mode and
// draft are untouched, so an open draft survives a background reload.
func (e *Editor[T, PT]) Refresh(ctx context.Context) error {
	records, err := e.api.List(ctx)
	if err != nil {
		return err
	}
	e.records = records
	return nil
}

// Records returns the records from the last successful refresh.
func (e *Editor[T, PT]) Records() []T {
	return e.records
}

// Mode returns the current editor mode.
func (e *Editor[T, PT]) Mode() Mode {
	return e.mode
}

// Draft returns the open draft, or nil when browsing. Mutate the
// returned value to edit the draft in place.
func (e *Editor[T, PT]) Draft() *T {
	return e.draft
}

// BeginCreate opens a blank draft. Fails with ErrDraftOpen if a draft
// is already open.
func (e *Editor[T, PT]) BeginCreate() error {
	if e.mode != ModeBrowsing {
		return ErrDraftOpen
	}
	var blank T
	e.draft = &blank
	e.mode = ModeCreating
	return nil
}

// BeginEdit opens a draft prefilled from the record with the given
// id. The draft is a copy; the listed record stays untouched until
// Submit succeeds.
func (e *Editor[T, PT]) BeginEdit(id int) error {
	if e.mode != ModeBrowsing {
		return ErrDraftOpen
	}
	for i := range e.records {
		if PT(&e.records[i]).GetID() == id {
			copied := e.records[i]
			e.draft = &copied
			e.mode = ModeEditing
			return nil
		}
	}
	return appErrors.ErrNotFound
}

// Cancel discards the open draft and returns to browsing. Safe to
// call while already browsing.
func (e *Editor[T, PT]) Cancel() {
	e.draft = nil
	e.mode = ModeBrowsing
}

// Submit sends the open draft to the API: Create when the draft was
// opened with BeginCreate, Update when opened with BeginEdit. On
// success the list is refreshed and the editor returns to browsing.
// On failure the draft and mode are kept so the admin can correct
// and resubmit.
func (e *Editor[T, PT]) Submit(ctx context.Context) error {
	if e.draft == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no draft to submit")
	}

	var err error
	switch e.mode {
	case ModeCreating:
		_, err = e.api.Create(ctx, *e.draft)
	case ModeEditing:
		_, err = e.api.Update(ctx, *e.draft)
	default:
		return appErrors.Clone(appErrors.ErrValidation, "no draft to submit")
	}
	if err != nil {
		return err
	}

	e.draft = nil
	e.mode = ModeBrowsing
	return e.Refresh(ctx)
}

// Delete removes the record with the given id. The confirmed flag
// must be true; without it the call fails with
// ErrConfirmationRequired and nothing is sent. On success the list
// is refreshed.
func (e *Editor[T, PT]) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := e.api.Delete(ctx, id); err != nil {
		return err
	}
	return e.Refresh(ctx)
}
