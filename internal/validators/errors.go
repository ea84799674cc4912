package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameTooShort      = errors.New("username must be at least 3 characters long")
	ErrEmptyPIN              = errors.New("PIN is required")
	ErrPINTooShort           = errors.New("PIN must be at least 8 characters long")
	ErrPINMissingUppercase   = errors.New("PIN must contain an uppercase letter")
	ErrPINMissingLowercase   = errors.New("PIN must contain a lowercase letter")
	ErrPINMissingDigit       = errors.New("PIN must contain a digit")
	ErrPINMissingSymbol      = errors.New("PIN must contain a symbol")
	ErrEmptySecurityQuestion = errors.New("security question is required")
	ErrEmptySecurityAnswer   = errors.New("security answer is required")

	ErrEmptyTitle   = errors.New("note title is required")
	ErrEmptyContent = errors.New("note content is required")
)

// IsValidationError reports whether err was produced by a validator in this
// package.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrUsernameTooShort, ErrEmptyPIN, ErrPINTooShort, ErrPINMissingUppercase, ErrPINMissingLowercase,
		ErrPINMissingDigit, ErrPINMissingSymbol, ErrEmptySecurityQuestion, ErrEmptySecurityAnswer,
		ErrEmptyTitle, ErrEmptyContent,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
