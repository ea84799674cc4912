// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/models"
)

type credentialRepository struct {
	store  SecureStore
	locker *KeyLocker
	logger *logger.Logger
}

// NewCredentialRepository returns a [CredentialRepository] on top of store.
func NewCredentialRepository(store SecureStore, locker *KeyLocker, log *logger.Logger) CredentialRepository {
	return &credentialRepository{
		store:  store,
		locker: locker,
		logger: log,
	}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, credential models.Credential) error {
	values := []struct{ key, value string }{
		{KeyCredentialUsername, credential.Username},
		{KeyCredentialSecurityQuestion, credential.SecurityQuestion},
		{KeyCredentialSecurityAnswer, credential.SecurityAnswerHash},
		// the PIN goes last: its presence is what marks the device as registered
		{KeyCredentialPIN, credential.PINHash},
	}

	for _, v := range values {
		if err := r.set(ctx, v.key, v.value); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "credentialRepository.SaveCredential").
				Str("key", v.key).
				Msg("error saving credential value")
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context) (models.Credential, error) {
	var (
		credential models.Credential
		err        error
	)

	targets := []struct {
		key string
		dst *string
	}{
		{KeyCredentialUsername, &credential.Username},
		{KeyCredentialPIN, &credential.PINHash},
		{KeyCredentialSecurityQuestion, &credential.SecurityQuestion},
		{KeyCredentialSecurityAnswer, &credential.SecurityAnswerHash},
	}

	for _, t := range targets {
		*t.dst, err = r.get(ctx, t.key)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "credentialRepository.GetCredential").
				Str("key", t.key).
				Msg("error reading credential value")
			return models.Credential{}, fmt.Errorf("read %s: %w", t.key, err)
		}
	}

	return credential, nil
}

func (r *credentialRepository) HasPIN(ctx context.Context) (bool, error) {
	pin, err := r.get(ctx, KeyCredentialPIN)
	if err != nil {
		return false, err
	}
	return pin != "", nil
}

func (r *credentialRepository) SetPINHash(ctx context.Context, pinHash string) error {
	if err := r.set(ctx, KeyCredentialPIN, pinHash); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.SetPINHash").
			Msg("error saving PIN hash")
		return fmt.Errorf("save %s: %w", KeyCredentialPIN, err)
	}
	return nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context) error {
	var errs []error
	for _, key := range CredentialKeys {
		unlock := r.locker.Lock(key)
		err := r.store.Delete(ctx, key)
		unlock()

		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "credentialRepository.DeleteCredential").
				Str("key", key).
				Msg("error deleting credential value")
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// get treats an absent key as an empty value.
func (r *credentialRepository) get(ctx context.Context, key string) (string, error) {
	value, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	return value, err
}

func (r *credentialRepository) set(ctx context.Context, key, value string) error {
	unlock := r.locker.Lock(key)
	defer unlock()

	return r.store.Set(ctx, key, value)
}
