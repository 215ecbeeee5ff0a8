package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// PaperFilter selects papers. Zero-valued fields do not filter; set fields
// combine with AND.
type PaperFilter struct {
	OwnerID  int64           // exact owner
	Search   string          // case-insensitive substring of the title
	Category domain.Category // exact category
}

// PaperRepository defines persistence operations for papers.
type PaperRepository interface {
	// Create returns domain.ErrUserNotFound when the owner does not exist.
	Create(ctx context.Context, paper *domain.Paper) (*domain.Paper, error)
	FindByID(ctx context.Context, id int64) (*domain.Paper, error)
	// List returns the matching papers ordered by ID.
	List(ctx context.Context, filter PaperFilter) ([]*domain.Paper, error)
	// Update persists title, description and category.
	Update(ctx context.Context, paper *domain.Paper) error
	// Delete returns domain.ErrPaperNotFound when no row was removed.
	Delete(ctx context.Context, id int64) error
}
