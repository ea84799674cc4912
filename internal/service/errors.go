package service

import "errors"

// Authentication outcomes. They are expected user errors, not faults.
var (
	ErrWrongPassword       = errors.New("wrong password")
	ErrWrongSecurityAnswer = errors.New("wrong security answer")
	ErrTooManyAttempts     = errors.New("too many failed attempts, try again later")
	ErrRecoveryNotVerified = errors.New("security answer has not been verified")
	ErrNotRegistered       = errors.New("no account is registered on this device")
	ErrPasswordsDoNotMatch = errors.New("new password and confirmation do not match")
)

// IsAuthError reports whether err is one of the authentication outcomes
// above.
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrWrongPassword, ErrWrongSecurityAnswer, ErrTooManyAttempts,
		ErrRecoveryNotVerified, ErrNotRegistered, ErrPasswordsDoNotMatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
