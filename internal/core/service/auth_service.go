package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users ports.UserRepository
	notes ports.NotificationLog
	creds Credentials
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, notes ports.NotificationLog, creds Credentials, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, notes: notes, creds: creds, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	user := &domain.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.TrimSpace(in.Email),
	}
	if user.FirstName == "" || user.LastName == "" || user.Username == "" || user.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	notify(ctx, s.notes, s.log, fmt.Sprintf("User '%s' registered successfully!", created.Username))
	return created, nil
}

// Login trims the username the same way Register does before looking it up.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.creds.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
