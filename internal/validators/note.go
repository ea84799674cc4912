package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-secure-notes/models"
)

// Field names accepted by NoteValidator.
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// NoteValidator checks the user supplied parts of a note.
type NoteValidator struct{}

// NewNoteValidator returns a Validator for [models.Note] and
// [models.NotePatch].
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate checks a note or a patch. For a patch only supplied fields are
// looked at.
func (v *NoteValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(*value, fields...)
	case models.NotePatch:
		return v.validatePatch(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(note.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validatePatch(patch models.NotePatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return ErrEmptyTitle
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}
