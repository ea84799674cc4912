package service

import (
	"context"

	"github.com/MKhiriev/go-secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NotesServiceWrapper

// CredentialService is the local authentication gate: registration, login,
// PIN rotation, two-step recovery and account deletion for the single user
// of the device. It also owns the in-memory session.
type CredentialService interface {
	// Register validates req and persists the credential record, hashing the
	// PIN and the normalised security answer. An existing record is
	// overwritten.
	Register(ctx context.Context, req models.RegisterRequest) error

	// IsRegistered reports whether a PIN is stored. Decides whether the
	// client starts on the login or the registration screen.
	IsRegistered(ctx context.Context) (bool, error)

	// Username returns the stored display name.
	Username(ctx context.Context) (string, error)

	// Authenticate checks pin against the stored hash and opens the session
	// on success. Returns ErrWrongPassword, ErrNotRegistered or
	// ErrTooManyAttempts.
	Authenticate(ctx context.Context, pin string) error

	// ChangePassword rotates the PIN after checking currentPIN. Nothing is
	// written when any check fails.
	ChangePassword(ctx context.Context, currentPIN, newPIN, confirmNewPIN string) error

	// SecurityQuestion returns the stored recovery question.
	SecurityQuestion(ctx context.Context) (string, error)

	// VerifySecurityAnswer is recovery step one. A case-insensitive match
	// arms ResetPassword; a mismatch disarms it.
	VerifySecurityAnswer(ctx context.Context, answer string) error

	// ResetPassword is recovery step two. Overwrites the PIN without the
	// complexity check; only an empty PIN is refused.
	ResetPassword(ctx context.Context, newPIN string) error

	// Logout clears the session and any armed recovery.
	Logout()

	// DeleteAccount removes the credential record and every note, then
	// clears the session. All deletes are attempted; errors are joined.
	DeleteAccount(ctx context.Context) error

	// Session returns a snapshot of the current session.
	Session() models.Session
}

// NotesService is the write-through cache of the notes collection.
// Mutations are written to the secure store before the in-memory copy
// changes, so a failed write leaves the previous state visible.
type NotesService interface {
	// Load replaces the in-memory collection with the stored one. A missing
	// or corrupted blob loads as empty without error.
	Load(ctx context.Context) error

	// Notes returns a copy of the collection in insertion order.
	Notes() []models.Note

	// Get looks a note up by id.
	Get(id string) (models.Note, bool)

	// Add appends a new note with a fresh id and the current time.
	Add(ctx context.Context, title, content string) (models.Note, error)

	// Update applies patch to the note with id. Unknown ids are a no-op.
	Update(ctx context.Context, id string, patch models.NotePatch) error

	// Delete removes the note with id. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteAll wipes the collection in memory and in storage.
	DeleteAll(ctx context.Context) error
}

// NotesServiceWrapper decorates a NotesService with extra behaviour such
// as validation.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService
}

// IDGenerator produces note identifiers.
type IDGenerator interface {
	Generate() string
}
