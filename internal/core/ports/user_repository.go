package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the username or email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername is an exact, case-sensitive match.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update persists every mutable field. Returns domain.ErrUserExists when
	// another user already holds the username or email.
	Update(ctx context.Context, user *domain.User) error
}
