package entity

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrIdentityTaken       = errors.New("identity name already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	ErrFullNameRequired    = errors.New("full name is required")
	ErrFullNameTooLong     = errors.New("full name cannot exceed 50 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidIdentityName = errors.New("identity name must be 3-20 alphanumeric characters")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrPasswordNeedsDigit  = errors.New("password must contain at least one number")
	ErrPasswordNeedsLetter = errors.New("password must contain at least one letter")
)
