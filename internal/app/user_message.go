package app

import (
	"errors"

	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/validators"
)

var userMessages = []struct {
	err error
	msg string
}{
	{validators.ErrUsernameTooShort, MsgUsernameTooShort},
	{validators.ErrEmptyPIN, MsgEmptyPIN},
	{validators.ErrPINTooShort, MsgPINPolicy},
	{validators.ErrPINMissingUppercase, MsgPINPolicy},
	{validators.ErrPINMissingLowercase, MsgPINPolicy},
	{validators.ErrPINMissingDigit, MsgPINPolicy},
	{validators.ErrPINMissingSymbol, MsgPINPolicy},
	{validators.ErrEmptySecurityQuestion, MsgSecurityQuestionRequired},
	{validators.ErrEmptySecurityAnswer, MsgSecurityAnswerRequired},
	{validators.ErrEmptyTitle, MsgEmptyTitle},
	{validators.ErrEmptyContent, MsgEmptyContent},

	{service.ErrWrongPassword, MsgWrongPassword},
	{service.ErrPasswordsDoNotMatch, MsgPasswordsDoNotMatch},
	{service.ErrWrongSecurityAnswer, MsgWrongSecurityAnswer},
	{service.ErrRecoveryNotVerified, MsgRecoveryNotVerified},
	{service.ErrTooManyAttempts, MsgTooManyAttempts},
	{service.ErrNotRegistered, MsgNotRegistered},

	{store.ErrKeyNotFound, MsgStorageFailure},
	{store.ErrDecodingNotes, MsgStorageFailure},
	{store.ErrEncodingNotes, MsgStorageFailure},
	{store.ErrSealingValue, MsgStorageFailure},
	{store.ErrExecutingQuery, MsgStorageFailure},
	{store.ErrExecutingStatement, MsgStorageFailure},
	{store.ErrBuildingSQLQuery, MsgStorageFailure},
}

// UserMessage turns err into text fit for a status line. nil maps to "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgUnexpected
}
