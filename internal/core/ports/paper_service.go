package ports

import (
	"context"
	"io"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// UploadPaperInput carries a new submission and its file content.
type UploadPaperInput struct {
	Title       string
	Description string
	Category    string
	Filename    string
	Content     io.Reader
}

// ModifyPaperInput carries a partial update. Blank Title or Description keep
// the stored value; Category always replaces it.
type ModifyPaperInput struct {
	Title       string
	Description string
	Category    string
}

// ExploreInput carries the public search parameters.
type ExploreInput struct {
	Search   string
	Category string
}

// Collaboration is the result of a collaboration request.
type Collaboration struct {
	Paper *domain.Paper
	Owner *domain.User
}

// PaperService defines use-case operations for papers. Every mutating call
// takes the acting user's ID explicitly.
type PaperService interface {
	Upload(ctx context.Context, ownerID int64, in UploadPaperInput) (*domain.Paper, error)
	Dashboard(ctx context.Context, ownerID int64) ([]*domain.Paper, error)
	Explore(ctx context.Context, in ExploreInput) ([]*domain.Paper, error)
	// GetOwned returns a paper for editing; domain.ErrForbidden unless actorID owns it.
	GetOwned(ctx context.Context, actorID, paperID int64) (*domain.Paper, error)
	Modify(ctx context.Context, actorID, paperID int64, in ModifyPaperInput) (*domain.Paper, error)
	Delete(ctx context.Context, actorID, paperID int64) (*domain.Paper, error)
	Collaborate(ctx context.Context, actorID, paperID int64) (*Collaboration, error)
}
