package service

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/internal/validators"
	"github.com/MKhiriev/go-secure-notes/models"
)

// NotesValidationService checks user input before it reaches the wrapped
// NotesService. Reads pass straight through.
type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
}

// NewNotesValidationService returns a wrapper rejecting blank titles and
// contents.
func NewNotesValidationService() NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NotesValidationService) Wrap(inner NotesService) NotesService {
	v.inner = inner
	return v
}

func (v *NotesValidationService) Load(ctx context.Context) error {
	return v.inner.Load(ctx)
}

func (v *NotesValidationService) Notes() []models.Note {
	return v.inner.Notes()
}

func (v *NotesValidationService) Get(id string) (models.Note, bool) {
	return v.inner.Get(id)
}

func (v *NotesValidationService) Add(ctx context.Context, title, content string) (models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{Title: title, Content: content}); err != nil {
		return models.Note{}, err
	}
	return v.inner.Add(ctx, title, content)
}

func (v *NotesValidationService) Update(ctx context.Context, id string, patch models.NotePatch) error {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return err
	}
	return v.inner.Update(ctx, id, patch)
}

func (v *NotesValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *NotesValidationService) DeleteAll(ctx context.Context) error {
	return v.inner.DeleteAll(ctx)
}
