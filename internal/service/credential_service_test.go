// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/mock"
	"github.com/MKhiriev/go-secure-notes/internal/validators"
	"github.com/MKhiriev/go-secure-notes/models"
)

var testAuthCfg = config.Auth{MaxAttempts: 3, AttemptInterval: time.Minute}

// newTestCredentialSvc is a helper building credentialService over mocks.
func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (
	*credentialService,
	*mock.MockCredentialRepository,
	*mock.MockSecretHasher,
	*mock.MockNotesService,
) {
	t.Helper()
	repo := mock.NewMockCredentialRepository(ctrl)
	hasher := mock.NewMockSecretHasher(ctrl)
	notes := mock.NewMockNotesService(ctrl)

	svc := NewCredentialService(repo, notes, hasher, testAuthCfg, logger.Nop()).(*credentialService)
	return svc, repo, hasher, notes
}

func storedCredential() models.Credential {
	return models.Credential{
		Username:           "alice",
		PINHash:            "pin-hash",
		SecurityQuestion:   models.SecurityQuestions[1],
		SecurityAnswerHash: "answer-hash",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestCredentialService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("Secur3!ty").Return("pin-hash", nil),
		hasher.EXPECT().Hash("fluffy").Return("answer-hash", nil),
		repo.EXPECT().SaveCredential(ctx, models.Credential{
			Username:           "alice",
			PINHash:            "pin-hash",
			SecurityQuestion:   models.SecurityQuestions[1],
			SecurityAnswerHash: "answer-hash",
		}).Return(nil),
	)

	err := svc.Register(ctx, models.RegisterRequest{
		Username:         "  alice ",
		PIN:              "Secur3!ty",
		SecurityQuestion: models.SecurityQuestions[1],
		SecurityAnswer:   " Fluffy ",
	})
	require.NoError(t, err)
}

func TestCredentialService_Register_ValidationBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestCredentialSvc(t, ctrl)

	// no expectations: nothing may be hashed or stored
	err := svc.Register(context.Background(), models.RegisterRequest{
		Username:         "al",
		PIN:              "Secur3!ty",
		SecurityQuestion: "q",
		SecurityAnswer:   "a",
	})
	assert.ErrorIs(t, err, validators.ErrUsernameTooShort)

	err = svc.Register(context.Background(), models.RegisterRequest{
		Username:         "alice",
		PIN:              "weak",
		SecurityQuestion: "q",
		SecurityAnswer:   "a",
	})
	assert.ErrorIs(t, err, validators.ErrPINTooShort)
}

func TestCredentialService_Register_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
	boom := errors.New("disk full")

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil).Times(2)
	repo.EXPECT().SaveCredential(gomock.Any(), gomock.Any()).Return(boom)

	err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice", PIN: "Secur3!ty", SecurityQuestion: "q", SecurityAnswer: "a",
	})
	assert.ErrorIs(t, err, boom)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestCredentialService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("success opens session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify("Secur3!ty", "pin-hash").Return(true, nil)

		require.NoError(t, svc.Authenticate(ctx, "Secur3!ty"))
		assert.Equal(t, models.Session{Username: "alice"}, svc.Session())
		assert.True(t, svc.Session().IsAuthenticated())
	})

	t.Run("wrong pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify("wrong", "pin-hash").Return(false, nil)

		assert.ErrorIs(t, svc.Authenticate(ctx, "wrong"), ErrWrongPassword)
		assert.False(t, svc.Session().IsAuthenticated())
	})

	t.Run("not registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(models.Credential{}, nil)

		assert.ErrorIs(t, svc.Authenticate(ctx, "Secur3!ty"), ErrNotRegistered)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestCredentialSvc(t, ctrl)
		boom := errors.New("boom")

		repo.EXPECT().GetCredential(ctx).Return(models.Credential{}, boom)

		err := svc.Authenticate(ctx, "Secur3!ty")
		assert.ErrorIs(t, err, boom)
		assert.False(t, IsAuthError(err))
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
		malformed := errors.New("malformed hash")

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, malformed)

		assert.ErrorIs(t, svc.Authenticate(ctx, "x"), malformed)
	})
}

func TestCredentialService_Authenticate_Throttling(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil).Times(testAuthCfg.MaxAttempts)
	hasher.EXPECT().Verify("wrong", "pin-hash").Return(false, nil).Times(testAuthCfg.MaxAttempts)

	for i := 0; i < testAuthCfg.MaxAttempts; i++ {
		require.ErrorIs(t, svc.Authenticate(ctx, "wrong"), ErrWrongPassword)
	}

	// bucket is empty: storage is not touched any more
	assert.ErrorIs(t, svc.Authenticate(ctx, "Secur3!ty"), ErrTooManyAttempts)
	assert.True(t, IsAuthError(ErrTooManyAttempts))

	// one interval later one attempt is back
	now = now.Add(testAuthCfg.AttemptInterval)
	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
	hasher.EXPECT().Verify("Secur3!ty", "pin-hash").Return(true, nil)
	require.NoError(t, svc.Authenticate(ctx, "Secur3!ty"))

	// success refilled the bucket
	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil).Times(testAuthCfg.MaxAttempts)
	hasher.EXPECT().Verify("wrong", "pin-hash").Return(false, nil).Times(testAuthCfg.MaxAttempts)
	for i := 0; i < testAuthCfg.MaxAttempts; i++ {
		require.ErrorIs(t, svc.Authenticate(ctx, "wrong"), ErrWrongPassword)
	}
}

func TestCredentialService_ThrottlingDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	hasher := mock.NewMockSecretHasher(ctrl)
	svc := NewCredentialService(repo, mock.NewMockNotesService(ctrl), hasher, config.Auth{}, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil).Times(20)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, nil).Times(20)

	for i := 0; i < 20; i++ {
		require.ErrorIs(t, svc.Authenticate(ctx, "wrong"), ErrWrongPassword)
	}
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestCredentialService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		gomock.InOrder(
			repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil),
			hasher.EXPECT().Verify("Secur3!ty", "pin-hash").Return(true, nil),
			hasher.EXPECT().Hash("N3w!Passw0rd").Return("new-hash", nil),
			repo.EXPECT().SetPINHash(ctx, "new-hash").Return(nil),
		)

		require.NoError(t, svc.ChangePassword(ctx, "Secur3!ty", "N3w!Passw0rd", "N3w!Passw0rd"))
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestCredentialSvc(t, ctrl)

		err := svc.ChangePassword(ctx, "Secur3!ty", "N3w!Passw0rd", "N3w!Passw0rD")
		assert.ErrorIs(t, err, ErrPasswordsDoNotMatch)
	})

	t.Run("weak new pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestCredentialSvc(t, ctrl)

		err := svc.ChangePassword(ctx, "Secur3!ty", "newpassword", "newpassword")
		assert.ErrorIs(t, err, validators.ErrPINMissingUppercase)
	})

	t.Run("current pin incorrect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify("nope", "pin-hash").Return(false, nil)
		// no SetPINHash expected

		err := svc.ChangePassword(ctx, "nope", "N3w!Passw0rd", "N3w!Passw0rd")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("storage error on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
		boom := errors.New("boom")

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("new-hash", nil)
		repo.EXPECT().SetPINHash(ctx, "new-hash").Return(boom)

		assert.ErrorIs(t, svc.ChangePassword(ctx, "Secur3!ty", "N3w!Passw0rd", "N3w!Passw0rd"), boom)
	})
}

// ── Recovery ─────────────────────────────────────────────────────────────────

func TestCredentialService_Recovery(t *testing.T) {
	ctx := context.Background()

	t.Run("reset requires verified answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestCredentialSvc(t, ctrl)

		assert.ErrorIs(t, svc.ResetPassword(ctx, "anything"), ErrRecoveryNotVerified)
	})

	t.Run("verified answer arms a single reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify("fluffy", "answer-hash").Return(true, nil)
		hasher.EXPECT().Hash("simple").Return("simple-hash", nil)
		repo.EXPECT().SetPINHash(ctx, "simple-hash").Return(nil)

		require.NoError(t, svc.VerifySecurityAnswer(ctx, "FLUFFY"))
		// no complexity check on the recovery path
		require.NoError(t, svc.ResetPassword(ctx, "simple"))
		assert.ErrorIs(t, svc.ResetPassword(ctx, "again"), ErrRecoveryNotVerified)
	})

	t.Run("empty pin refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify("fluffy", "answer-hash").Return(true, nil)

		require.NoError(t, svc.VerifySecurityAnswer(ctx, "Fluffy"))
		assert.ErrorIs(t, svc.ResetPassword(ctx, ""), validators.ErrEmptyPIN)
	})

	t.Run("wrong answer disarms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil).Times(2)
		hasher.EXPECT().Verify("fluffy", "answer-hash").Return(true, nil)
		hasher.EXPECT().Verify("fluffy2", "answer-hash").Return(false, nil)

		require.NoError(t, svc.VerifySecurityAnswer(ctx, "Fluffy"))
		assert.ErrorIs(t, svc.VerifySecurityAnswer(ctx, "Fluffy2"), ErrWrongSecurityAnswer)
		assert.ErrorIs(t, svc.ResetPassword(ctx, "x"), ErrRecoveryNotVerified)
	})

	t.Run("logout disarms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)

		require.NoError(t, svc.VerifySecurityAnswer(ctx, "Fluffy"))
		svc.Logout()
		assert.ErrorIs(t, svc.ResetPassword(ctx, "x"), ErrRecoveryNotVerified)
	})

	t.Run("security question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestCredentialSvc(t, ctrl)

		repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
		q, err := svc.SecurityQuestion(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.SecurityQuestions[1], q)

		repo.EXPECT().GetCredential(ctx).Return(models.Credential{}, nil)
		_, err = svc.SecurityQuestion(ctx)
		assert.ErrorIs(t, err, ErrNotRegistered)
	})
}

// ── Session & account ────────────────────────────────────────────────────────

func TestCredentialService_IsRegisteredAndUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().HasPIN(ctx).Return(true, nil)
	registered, err := svc.IsRegistered(ctx)
	require.NoError(t, err)
	assert.True(t, registered)

	repo.EXPECT().HasPIN(ctx).Return(false, errors.New("boom"))
	_, err = svc.IsRegistered(ctx)
	assert.Error(t, err)

	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
	name, err := svc.Username(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestCredentialService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx).Return(storedCredential(), nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
	require.NoError(t, svc.Authenticate(ctx, "Secur3!ty"))

	svc.Logout()
	assert.Equal(t, models.Session{}, svc.Session())
}

func TestCredentialService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, notes := newTestCredentialSvc(t, ctrl)
		svc.session = models.Session{Username: "alice"}

		repo.EXPECT().DeleteCredential(ctx).Return(nil)
		notes.EXPECT().DeleteAll(ctx).Return(nil)

		require.NoError(t, svc.DeleteAccount(ctx))
		assert.False(t, svc.Session().IsAuthenticated())
	})

	t.Run("every delete attempted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, notes := newTestCredentialSvc(t, ctrl)
		svc.session = models.Session{Username: "alice"}
		credErr := errors.New("credential locked")
		notesErr := errors.New("notes locked")

		repo.EXPECT().DeleteCredential(ctx).Return(credErr)
		notes.EXPECT().DeleteAll(ctx).Return(notesErr)

		err := svc.DeleteAccount(ctx)
		assert.ErrorIs(t, err, credErr)
		assert.ErrorIs(t, err, notesErr)
		assert.False(t, svc.Session().IsAuthenticated())
	})
}
