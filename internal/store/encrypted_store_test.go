package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/mock"
)

func testLogger() *logger.Logger {
	return logger.Nop()
}

func newTestKeyChain(t *testing.T) crypto.KeyChainService {
	t.Helper()

	key, err := crypto.GenerateDeviceKey()
	require.NoError(t, err)
	kc, err := crypto.NewKeyChainService(key)
	require.NoError(t, err)
	return kc
}

func TestEncryptedStore_Contract(t *testing.T) {
	runSecureStoreContract(t, func(t *testing.T) SecureStore {
		return NewEncryptedStore(NewMemoryStore(), newTestKeyChain(t), testLogger())
	})
}

func TestEncryptedStore_ValuesAtRestAreSealed(t *testing.T) {
	ctx := context.Background()
	raw := NewMemoryStore()
	s := NewEncryptedStore(raw, newTestKeyChain(t), testLogger())

	require.NoError(t, s.Set(ctx, KeyCredentialUsername, "alice"))

	atRest, err := raw.Get(ctx, KeyCredentialUsername)
	require.NoError(t, err)
	assert.NotEqual(t, "alice", atRest)
	assert.False(t, strings.Contains(atRest, "alice"))

	plain, err := s.Get(ctx, KeyCredentialUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", plain)
}

func TestEncryptedStore_OtherDeviceKeyCannotRead(t *testing.T) {
	ctx := context.Background()
	raw := NewMemoryStore()

	require.NoError(t, NewEncryptedStore(raw, newTestKeyChain(t), testLogger()).Set(ctx, KeyNotes, "[]"))

	_, err := NewEncryptedStore(raw, newTestKeyChain(t), testLogger()).Get(ctx, KeyNotes)
	assert.ErrorIs(t, err, ErrSealingValue)
}

func TestEncryptedStore_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("seal failure does not touch inner store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock.NewMockSecureStore(ctrl)
		kc := mock.NewMockKeyChainService(ctrl)

		kc.EXPECT().Seal("v").Return("", errors.New("rng failure"))

		err := NewEncryptedStore(inner, kc, testLogger()).Set(ctx, "k", "v")
		assert.ErrorIs(t, err, ErrSealingValue)
	})

	t.Run("inner get error is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock.NewMockSecureStore(ctrl)
		kc := mock.NewMockKeyChainService(ctrl)

		inner.EXPECT().Get(ctx, "k").Return("", ErrKeyNotFound)

		_, err := NewEncryptedStore(inner, kc, testLogger()).Get(ctx, "k")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("delete goes straight to inner store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock.NewMockSecureStore(ctrl)
		kc := mock.NewMockKeyChainService(ctrl)

		inner.EXPECT().Delete(ctx, "k").Return(nil)

		assert.NoError(t, NewEncryptedStore(inner, kc, testLogger()).Delete(ctx, "k"))
	})
}
