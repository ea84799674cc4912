package service

import (
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/store"
)

// ClientServices groups the services the terminal UI talks to.
type ClientServices struct {
	CredentialService CredentialService
	NotesService      NotesService
}

// NewClientServices wires the services over storages. Note input is
// validated by a NotesValidationService in front of the notes cache.
func NewClientServices(storages *store.ClientStorages, hasher crypto.SecretHasher, cfg config.Auth, log *logger.Logger) *ClientServices {
	notes := NewNotesValidationService().Wrap(NewNotesService(storages.NotesRepository, log))

	return &ClientServices{
		CredentialService: NewCredentialService(storages.CredentialRepository, notes, hasher, cfg, log),
		NotesService:      notes,
	}
}
