package entity

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailTaken              = errors.New("email already in use")
	ErrIdentityTaken           = errors.New("identity name already in use")
	ErrCurrentPasswordRequired = errors.New("current password is required to set a new password")
	ErrCurrentPasswordWrong    = errors.New("current password is incorrect")
	ErrFullNameTooLong         = errors.New("full name cannot exceed 50 characters")
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrInvalidIdentityName     = errors.New("identity name must be 3-20 alphanumeric characters")
	ErrPasswordTooShort        = errors.New("password must be at least 8 characters")
	ErrPasswordNeedsDigit      = errors.New("password must contain at least one number")
	ErrPasswordNeedsLetter     = errors.New("password must contain at least one letter")
	ErrAvatarUploadFailed      = errors.New("failed to upload avatar")
	ErrUnsupportedImageType    = errors.New("invalid image format")
)
