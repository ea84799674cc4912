package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

const fileDSNPrefix = "file://"

// ClientStorages groups the repositories of the secure-notes client on top
// of one encrypted secure store.
type ClientStorages struct {
	CredentialRepository CredentialRepository
	NotesRepository      NotesRepository

	close func() error
}

// NewClientStorages opens the backend selected by cfg.DSN, wraps it with
// the device key encryption layer and builds the repositories.
//
// DSN forms:
//   - ":memory:" or "memory": in-process map, nothing survives a restart;
//   - "file://<path>": one JSON document;
//   - anything else: SQLite database path, migrated on open.
func NewClientStorages(ctx context.Context, cfg config.Storage, keychain crypto.KeyChainService, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	raw, closeFn, err := openSecureStore(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	return NewClientStoragesFromStore(NewEncryptedStore(raw, keychain, log), closeFn, log), nil
}

// NewClientStoragesFromStore builds the repositories over an already
// prepared store. closeFn may be nil.
func NewClientStoragesFromStore(secure SecureStore, closeFn func() error, log *logger.Logger) *ClientStorages {
	locker := NewKeyLocker()
	if closeFn == nil {
		closeFn = func() error { return nil }
	}

	return &ClientStorages{
		CredentialRepository: NewCredentialRepository(secure, locker, log),
		NotesRepository:      NewNotesRepository(secure, locker, log),
		close:                closeFn,
	}
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func openSecureStore(ctx context.Context, dsn string, log *logger.Logger) (SecureStore, func() error, error) {
	switch {
	case dsn == "":
		return nil, nil, ErrUnsupportedDSN
	case dsn == ":memory:" || dsn == "memory":
		return NewMemoryStore(), nil, nil
	case strings.HasPrefix(dsn, fileDSNPrefix):
		path := strings.TrimPrefix(dsn, fileDSNPrefix)
		if path == "" {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
		}
		s, err := NewFileStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("file store error: %w", err)
		}
		return s, nil, nil
	}

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStore(db, log), db.Close, nil
}
