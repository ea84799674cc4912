package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/utils"
	"github.com/MKhiriev/go-secure-notes/models"
)

type notesService struct {
	repository store.NotesRepository
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger

	// writeMu serialises read-modify-write cycles, mu guards notes.
	writeMu sync.Mutex
	mu      sync.RWMutex
	notes   []models.Note
}

// NewNotesService returns the notes cache over repository. Call Load
// before reading.
func NewNotesService(repository store.NotesRepository, log *logger.Logger) NotesService {
	return &notesService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     log,
		notes:      []models.Note{},
	}
}

func (n *notesService) Load(ctx context.Context) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	notes, err := n.repository.LoadNotes(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrKeyNotFound):
		notes = []models.Note{}
	case errors.Is(err, store.ErrDecodingNotes):
		n.logger.Err(err).Str("func", "notesService.Load").Msg("stored notes are unreadable, starting empty")
		notes = []models.Note{}
	default:
		n.logger.Err(err).Str("func", "notesService.Load").Msg("error loading notes")
		n.replace([]models.Note{})
		return fmt.Errorf("error loading notes: %w", err)
	}

	n.replace(notes)
	n.logger.Debug().Str("func", "notesService.Load").Int("count", len(notes)).Msg("notes loaded")
	return nil
}

func (n *notesService) Notes() []models.Note {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.notes)
}

func (n *notesService) Get(id string) (models.Note, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if i := indexOf(n.notes, id); i >= 0 {
		return n.notes[i], true
	}
	return models.Note{}, false
}

func (n *notesService) Add(ctx context.Context, title, content string) (models.Note, error) {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	note := models.Note{
		ID:        n.ids.Generate(),
		Title:     title,
		Content:   content,
		CreatedAt: n.now().UTC(),
	}

	next := append(n.Notes(), note)
	if err := n.save(ctx, next, "notesService.Add"); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (n *notesService) Update(ctx context.Context, id string, patch models.NotePatch) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	next := n.Notes()
	i := indexOf(next, id)
	if i < 0 || patch.IsEmpty() {
		return nil
	}

	next[i] = patch.Apply(next[i])
	return n.save(ctx, next, "notesService.Update")
}

func (n *notesService) Delete(ctx context.Context, id string) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	next := n.Notes()
	i := indexOf(next, id)
	if i < 0 {
		return nil
	}

	return n.save(ctx, slices.Delete(next, i, i+1), "notesService.Delete")
}

// DeleteAll clears memory and deletes the blob. If the key still yields a
// value afterwards, it is overwritten with an empty collection.
func (n *notesService) DeleteAll(ctx context.Context) error {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	n.replace([]models.Note{})

	var errs []error
	if err := n.repository.DeleteNotes(ctx); err != nil {
		errs = append(errs, err)
	}

	if _, err := n.repository.LoadNotes(ctx); !errors.Is(err, store.ErrKeyNotFound) {
		n.logger.Warn().Err(err).Str("func", "notesService.DeleteAll").Msg("notes still present after delete, overwriting")
		if err = n.repository.SaveNotes(ctx, []models.Note{}); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		n.logger.Err(err).Str("func", "notesService.DeleteAll").Msg("error deleting notes")
		return fmt.Errorf("error deleting notes: %w", err)
	}
	return nil
}

// save writes next and only then makes it the in-memory collection.
func (n *notesService) save(ctx context.Context, next []models.Note, fn string) error {
	if err := n.repository.SaveNotes(ctx, next); err != nil {
		n.logger.Err(err).Str("func", fn).Msg("error saving notes")
		return fmt.Errorf("error saving notes: %w", err)
	}

	n.replace(next)
	return nil
}

func (n *notesService) replace(notes []models.Note) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notes = notes
}

func indexOf(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(note models.Note) bool { return note.ID == id })
}
