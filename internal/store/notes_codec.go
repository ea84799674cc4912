package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/models"
)

// EncodeNotes serialises notes to the JSON array stored under [KeyNotes].
// A nil slice encodes as "[]".
func EncodeNotes(notes []models.Note) (string, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingNotes, err)
	}
	return string(data), nil
}

// DecodeNotes parses a notes blob. An empty or "null" blob decodes to an
// empty collection.
func DecodeNotes(blob string) ([]models.Note, error) {
	notes := []models.Note{}
	if blob == "" {
		return notes, nil
	}

	if err := json.Unmarshal([]byte(blob), &notes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingNotes, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}
