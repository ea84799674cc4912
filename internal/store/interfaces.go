package store

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecureStore is a string-keyed key-value store.
//
// The raw backends (SQLite, JSON file, memory) keep values as given; the
// store returned by [NewEncryptedStore] seals them with the device key.
// Both satisfy this interface, so repositories never know which one they
// talk to.
type SecureStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// CredentialRepository persists the single local credential record as four
// independent secure store values.
type CredentialRepository interface {
	// SaveCredential writes all four credential values. Values are written
	// one by one; a failure leaves the earlier ones in place.
	SaveCredential(ctx context.Context, credential models.Credential) error

	// GetCredential reads all four values. Absent values come back empty;
	// only storage failures are errors.
	GetCredential(ctx context.Context) (models.Credential, error)

	// HasPIN reports whether a PIN hash is stored, which is what marks the
	// device as registered.
	HasPIN(ctx context.Context) (bool, error)

	// SetPINHash replaces the stored PIN hash.
	SetPINHash(ctx context.Context, pinHash string) error

	// DeleteCredential removes all four values. Every delete is attempted;
	// failures are joined into the returned error.
	DeleteCredential(ctx context.Context) error
}

// NotesRepository persists the notes collection as one JSON blob.
type NotesRepository interface {
	// LoadNotes reads and decodes the blob. Returns [ErrKeyNotFound] when
	// no blob is stored and [ErrDecodingNotes] when it is not valid JSON.
	LoadNotes(ctx context.Context) ([]models.Note, error)

	// SaveNotes encodes notes and overwrites the blob.
	SaveNotes(ctx context.Context, notes []models.Note) error

	// DeleteNotes removes the blob.
	DeleteNotes(ctx context.Context) error
}
