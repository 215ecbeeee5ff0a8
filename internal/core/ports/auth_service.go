package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService covers registration and credential checks. Session handling
// lives in the transport layer.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns domain.ErrInvalidCredentials for both unknown usernames
	// and wrong passwords.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
