package errors

import "cordonnier/internal/errors"

// Sentinel errors for password strength validation. These stay plain errors
// rather than AppErrors so callers can wrap them into ErrValidationFailed
// with a localized message.
var (
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong        = errors.New("password must be at most 128 characters long")
	ErrPasswordNoLowercase    = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoUppercase    = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoNumbers      = errors.New("password must contain at least one number")
	ErrPasswordNoSpecialChars = errors.New("password must contain at least one special character")
	ErrPasswordForbiddenWords = errors.New("password contains forbidden words")
)
