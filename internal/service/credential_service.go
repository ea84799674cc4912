// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/validators"
	"github.com/MKhiriev/go-secure-notes/models"
)

type credentialService struct {
	repository store.CredentialRepository
	notes      NotesService
	hasher     crypto.SecretHasher
	validator  validators.Validator
	logger     *logger.Logger

	authCfg config.Auth
	now     func() time.Time

	mu            sync.Mutex
	limiter       *rate.Limiter
	session       models.Session
	recoveryArmed bool
}

// NewCredentialService builds the authentication gate. notes is wiped on
// account deletion.
func NewCredentialService(
	repository store.CredentialRepository,
	notes NotesService,
	hasher crypto.SecretHasher,
	authCfg config.Auth,
	log *logger.Logger,
) CredentialService {
	return &credentialService{
		repository: repository,
		notes:      notes,
		hasher:     hasher,
		validator:  validators.NewCredentialValidator(),
		logger:     log,
		authCfg:    authCfg,
		now:        time.Now,
		limiter:    newAttemptLimiter(authCfg),
	}
}

// newAttemptLimiter allows MaxAttempts failures in a burst and gives one
// attempt back every AttemptInterval. A nil limiter never throttles.
func newAttemptLimiter(cfg config.Auth) *rate.Limiter {
	if cfg.MaxAttempts <= 0 || cfg.AttemptInterval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(cfg.AttemptInterval), cfg.MaxAttempts)
}

func (c *credentialService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := c.validator.Validate(ctx, req); err != nil {
		return err
	}

	pinHash, err := c.hasher.Hash(req.PIN)
	if err != nil {
		return fmt.Errorf("error hashing PIN: %w", err)
	}
	answerHash, err := c.hasher.Hash(normalizeAnswer(req.SecurityAnswer))
	if err != nil {
		return fmt.Errorf("error hashing security answer: %w", err)
	}

	credential := models.Credential{
		Username:           strings.TrimSpace(req.Username),
		PINHash:            pinHash,
		SecurityQuestion:   strings.TrimSpace(req.SecurityQuestion),
		SecurityAnswerHash: answerHash,
	}
	if err = c.repository.SaveCredential(ctx, credential); err != nil {
		c.logger.Err(err).Str("func", "credentialService.Register").Msg("error saving credential")
		return fmt.Errorf("error saving credential: %w", err)
	}

	c.logger.Info().Str("func", "credentialService.Register").Str("username", credential.Username).Msg("user registered")
	return nil
}

func (c *credentialService) IsRegistered(ctx context.Context) (bool, error) {
	registered, err := c.repository.HasPIN(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "credentialService.IsRegistered").Msg("error reading PIN")
		return false, fmt.Errorf("error checking registration: %w", err)
	}
	return registered, nil
}

func (c *credentialService) Username(ctx context.Context) (string, error) {
	credential, err := c.credential(ctx, "credentialService.Username")
	if err != nil {
		return "", err
	}
	return credential.Username, nil
}

func (c *credentialService) Authenticate(ctx context.Context, pin string) error {
	if c.throttled() {
		c.logger.Debug().Str("func", "credentialService.Authenticate").Msg("login attempt throttled")
		return ErrTooManyAttempts
	}

	credential, err := c.credential(ctx, "credentialService.Authenticate")
	if err != nil {
		return err
	}
	if credential.PINHash == "" {
		return ErrNotRegistered
	}

	if err = c.verify(pin, credential.PINHash, ErrWrongPassword); err != nil {
		c.logger.Debug().Err(err).Str("func", "credentialService.Authenticate").Msg("login failed")
		return err
	}

	c.mu.Lock()
	c.session = models.Session{Username: credential.Username}
	c.limiter = newAttemptLimiter(c.authCfg)
	c.mu.Unlock()

	c.logger.Info().Str("func", "credentialService.Authenticate").Str("username", credential.Username).Msg("user logged in")
	return nil
}

func (c *credentialService) ChangePassword(ctx context.Context, currentPIN, newPIN, confirmNewPIN string) error {
	if newPIN != confirmNewPIN {
		return ErrPasswordsDoNotMatch
	}
	if err := c.validator.Validate(ctx, models.RegisterRequest{PIN: newPIN}, validators.FieldPIN); err != nil {
		return err
	}
	if c.throttled() {
		return ErrTooManyAttempts
	}

	credential, err := c.credential(ctx, "credentialService.ChangePassword")
	if err != nil {
		return err
	}
	if credential.PINHash == "" {
		return ErrNotRegistered
	}
	if err = c.verify(currentPIN, credential.PINHash, ErrWrongPassword); err != nil {
		c.logger.Debug().Err(err).Str("func", "credentialService.ChangePassword").Msg("current PIN rejected")
		return err
	}

	return c.storePIN(ctx, newPIN, "credentialService.ChangePassword")
}

func (c *credentialService) SecurityQuestion(ctx context.Context) (string, error) {
	credential, err := c.credential(ctx, "credentialService.SecurityQuestion")
	if err != nil {
		return "", err
	}
	if credential.SecurityQuestion == "" {
		return "", ErrNotRegistered
	}
	return credential.SecurityQuestion, nil
}

func (c *credentialService) VerifySecurityAnswer(ctx context.Context, answer string) error {
	if c.throttled() {
		return ErrTooManyAttempts
	}

	credential, err := c.credential(ctx, "credentialService.VerifySecurityAnswer")
	if err != nil {
		return err
	}
	if credential.SecurityAnswerHash == "" {
		return ErrNotRegistered
	}

	err = c.verify(normalizeAnswer(answer), credential.SecurityAnswerHash, ErrWrongSecurityAnswer)

	c.mu.Lock()
	c.recoveryArmed = err == nil
	c.mu.Unlock()

	if err != nil {
		c.logger.Debug().Err(err).Str("func", "credentialService.VerifySecurityAnswer").Msg("security answer rejected")
	}
	return err
}

func (c *credentialService) ResetPassword(ctx context.Context, newPIN string) error {
	c.mu.Lock()
	armed := c.recoveryArmed
	c.mu.Unlock()

	if !armed {
		return ErrRecoveryNotVerified
	}
	if newPIN == "" {
		return validators.ErrEmptyPIN
	}

	if err := c.storePIN(ctx, newPIN, "credentialService.ResetPassword"); err != nil {
		return err
	}

	c.mu.Lock()
	c.recoveryArmed = false
	c.mu.Unlock()
	return nil
}

func (c *credentialService) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = models.Session{}
	c.recoveryArmed = false
}

func (c *credentialService) DeleteAccount(ctx context.Context) error {
	var errs []error

	if err := c.repository.DeleteCredential(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error deleting credential: %w", err))
	}
	if err := c.notes.DeleteAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error deleting notes: %w", err))
	}

	c.Logout()

	err := errors.Join(errs...)
	if err != nil {
		c.logger.Err(err).Str("func", "credentialService.DeleteAccount").Msg("account deletion incomplete")
		return err
	}

	c.logger.Info().Str("func", "credentialService.DeleteAccount").Msg("account deleted")
	return nil
}

func (c *credentialService) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session
}

func (c *credentialService) credential(ctx context.Context, fn string) (models.Credential, error) {
	credential, err := c.repository.GetCredential(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", fn).Msg("error reading credential")
		return models.Credential{}, fmt.Errorf("error reading credential: %w", err)
	}
	return credential, nil
}

// verify compares secret with the stored hash. A mismatch spends one
// attempt and returns mismatchErr.
func (c *credentialService) verify(secret, hash string, mismatchErr error) error {
	ok, err := c.hasher.Verify(secret, hash)
	if err != nil {
		return fmt.Errorf("error verifying secret: %w", err)
	}
	if !ok {
		c.mu.Lock()
		if c.limiter != nil {
			c.limiter.AllowN(c.now(), 1)
		}
		c.mu.Unlock()
		return mismatchErr
	}
	return nil
}

func (c *credentialService) throttled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.limiter != nil && c.limiter.TokensAt(c.now()) < 1
}

func (c *credentialService) storePIN(ctx context.Context, pin, fn string) error {
	pinHash, err := c.hasher.Hash(pin)
	if err != nil {
		return fmt.Errorf("error hashing PIN: %w", err)
	}
	if err = c.repository.SetPINHash(ctx, pinHash); err != nil {
		c.logger.Err(err).Str("func", fn).Msg("error saving PIN")
		return fmt.Errorf("error saving PIN: %w", err)
	}

	c.logger.Info().Str("func", fn).Msg("PIN changed")
	return nil
}

// normalizeAnswer makes security answers compare case-insensitively.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
