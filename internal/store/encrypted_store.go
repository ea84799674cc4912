// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

// encryptedStore seals every value with the device key before handing it
// to the underlying backend, and opens it on the way back. Keys stay in
// the clear.
type encryptedStore struct {
	inner    SecureStore
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewEncryptedStore wraps inner so that values at rest are AES-GCM sealed.
func NewEncryptedStore(inner SecureStore, keychain crypto.KeyChainService, log *logger.Logger) SecureStore {
	return &encryptedStore{
		inner:    inner,
		keychain: keychain,
		logger:   log,
	}
}

func (e *encryptedStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := e.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	plain, err := e.keychain.Open(sealed)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptedStore.Get").Str("key", key).Msg("error opening sealed value")
		return "", fmt.Errorf("%w: %w", ErrSealingValue, err)
	}

	return plain, nil
}

func (e *encryptedStore) Set(ctx context.Context, key, value string) error {
	sealed, err := e.keychain.Seal(value)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptedStore.Set").Str("key", key).Msg("error sealing value")
		return fmt.Errorf("%w: %w", ErrSealingValue, err)
	}

	return e.inner.Set(ctx, key, sealed)
}

func (e *encryptedStore) Delete(ctx context.Context, key string) error {
	return e.inner.Delete(ctx, key)
}
