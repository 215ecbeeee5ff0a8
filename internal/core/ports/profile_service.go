package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// UpdateProfileInput carries the edit-profile form. An empty Password keeps
// the current one.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	Update(ctx context.Context, userID int64, in UpdateProfileInput) (*domain.User, error)
}
