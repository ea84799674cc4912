package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-secure-notes/models"
)

// Field names accepted by CredentialValidator.
const (
	FieldUsername         = "username"
	FieldPIN              = "pin"
	FieldSecurityQuestion = "security_question"
	FieldSecurityAnswer   = "security_answer"
)

const (
	// MinUsernameLength is counted in runes after trimming.
	MinUsernameLength = 3
	// MinPINLength is counted in runes.
	MinPINLength = 8
)

// CredentialValidator enforces the registration policy on
// [models.RegisterRequest].
type CredentialValidator struct{}

// NewCredentialValidator returns a Validator for registration and PIN
// change input.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate checks a models.RegisterRequest. With no fields every rule
// applies; otherwise only the named ones.
func (v *CredentialValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegisterRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPIN, FieldSecurityQuestion, FieldSecurityAnswer}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldPIN:
			if err := ValidatePIN(req.PIN); err != nil {
				return err
			}
		case FieldSecurityQuestion:
			if strings.TrimSpace(req.SecurityQuestion) == "" {
				return ErrEmptySecurityQuestion
			}
		case FieldSecurityAnswer:
			if strings.TrimSpace(req.SecurityAnswer) == "" {
				return ErrEmptySecurityAnswer
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidatePIN applies the PIN complexity policy: at least MinPINLength
// characters with an uppercase letter, a lowercase letter, a digit and a
// character that is neither letter nor digit.
func ValidatePIN(pin string) error {
	if utf8.RuneCountInString(pin) < MinPINLength {
		return ErrPINTooShort
	}

	var upper, lower, digit, symbol bool
	for _, r := range pin {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}

	switch {
	case !upper:
		return ErrPINMissingUppercase
	case !lower:
		return ErrPINMissingLowercase
	case !digit:
		return ErrPINMissingDigit
	case !symbol:
		return ErrPINMissingSymbol
	}
	return nil
}
