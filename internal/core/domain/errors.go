package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrPaperNotFound      = errors.New("paper not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrStorage            = errors.New("file storage failure")
)
