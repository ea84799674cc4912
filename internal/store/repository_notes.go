package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/models"
)

type notesRepository struct {
	store  SecureStore
	locker *KeyLocker
	logger *logger.Logger
}

// NewNotesRepository returns a [NotesRepository] on top of store.
func NewNotesRepository(store SecureStore, locker *KeyLocker, log *logger.Logger) NotesRepository {
	return &notesRepository{
		store:  store,
		locker: locker,
		logger: log,
	}
}

func (r *notesRepository) LoadNotes(ctx context.Context) ([]models.Note, error) {
	blob, err := r.store.Get(ctx, KeyNotes)
	if err != nil {
		return nil, err
	}

	notes, err := DecodeNotes(blob)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notesRepository.LoadNotes").Msg("stored notes blob is corrupted")
		return nil, err
	}
	return notes, nil
}

func (r *notesRepository) SaveNotes(ctx context.Context, notes []models.Note) error {
	blob, err := EncodeNotes(notes)
	if err != nil {
		return err
	}

	unlock := r.locker.Lock(KeyNotes)
	defer unlock()

	if err = r.store.Set(ctx, KeyNotes, blob); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notesRepository.SaveNotes").Int("count", len(notes)).Msg("error saving notes")
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (r *notesRepository) DeleteNotes(ctx context.Context) error {
	unlock := r.locker.Lock(KeyNotes)
	defer unlock()

	if err := r.store.Delete(ctx, KeyNotes); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notesRepository.DeleteNotes").Msg("error deleting notes")
		return fmt.Errorf("delete notes: %w", err)
	}
	return nil
}
