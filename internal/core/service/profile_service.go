package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type ProfileService struct {
	users ports.UserRepository
	creds Credentials
	log   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, creds Credentials, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, creds: creds, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update replaces the profile fields of userID. The password is re-hashed
// only when a new one is supplied. Uniqueness is enforced by the repository,
// which ignores the user's own row.
func (s *ProfileService) Update(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *user
	updated.FirstName = strings.TrimSpace(in.FirstName)
	updated.LastName = strings.TrimSpace(in.LastName)
	updated.Username = strings.TrimSpace(in.Username)
	updated.Email = strings.TrimSpace(in.Email)
	if updated.FirstName == "" || updated.LastName == "" || updated.Username == "" || updated.Email == "" {
		return nil, domain.ErrValidation
	}

	if in.Password != "" {
		hash, err := s.creds.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hash
	}

	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info().Int64("user_id", userID).Bool("password_changed", in.Password != "").Msg("profile updated")
	return &updated, nil
}
