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

type PaperService struct {
	papers ports.PaperRepository
	users  ports.UserRepository
	files  ports.FileStore
	notes  ports.NotificationLog
	log    zerolog.Logger
}

func NewPaperService(
	papers ports.PaperRepository,
	users ports.UserRepository,
	files ports.FileStore,
	notes ports.NotificationLog,
	log zerolog.Logger,
) *PaperService {
	return &PaperService{papers: papers, users: users, files: files, notes: notes, log: log}
}

// Upload stores the file first and then inserts the paper. When the insert
// fails the stored file is removed again, so a failed upload leaves neither a
// row nor a file.
func (s *PaperService) Upload(ctx context.Context, ownerID int64, in ports.UploadPaperInput) (*domain.Paper, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" || in.Category == "" || in.Filename == "" || in.Content == nil {
		return nil, domain.ErrValidation
	}
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Store(ctx, in.Filename, in.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	paper, err := s.papers.Create(ctx, &domain.Paper{
		Title:       title,
		Description: description,
		Category:    category,
		FilePath:    path,
		UserID:      ownerID,
	})
	if err != nil {
		if rmErr := s.files.Remove(ctx, path); rmErr != nil {
			s.log.Error().Err(rmErr).Str("path", path).Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("upload: %w", err)
	}

	s.log.Info().
		Int64("paper_id", paper.ID).
		Int64("user_id", ownerID).
		Str("category", string(category)).
		Msg("paper uploaded")
	notify(ctx, s.notes, s.log, fmt.Sprintf("Paper '%s' uploaded successfully!", paper.Title))
	return paper, nil
}

func (s *PaperService) Dashboard(ctx context.Context, ownerID int64) ([]*domain.Paper, error) {
	return s.papers.List(ctx, ports.PaperFilter{OwnerID: ownerID})
}

// Explore lists papers for the public search page. An unknown category is not
// an error; it simply matches nothing.
func (s *PaperService) Explore(ctx context.Context, in ports.ExploreInput) ([]*domain.Paper, error) {
	return s.papers.List(ctx, ports.PaperFilter{
		Search:   strings.TrimSpace(in.Search),
		Category: domain.Category(in.Category),
	})
}

func (s *PaperService) GetOwned(ctx context.Context, actorID, paperID int64) (*domain.Paper, error) {
	paper, err := s.papers.FindByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if !paper.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}
	return paper, nil
}

func (s *PaperService) Modify(ctx context.Context, actorID, paperID int64, in ports.ModifyPaperInput) (*domain.Paper, error) {
	paper, err := s.GetOwned(ctx, actorID, paperID)
	if err != nil {
		return nil, err
	}
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	updated := *paper
	if title := strings.TrimSpace(in.Title); title != "" {
		updated.Title = title
	}
	if description := strings.TrimSpace(in.Description); description != "" {
		updated.Description = description
	}
	updated.Category = category

	if err := s.papers.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("modify paper: %w", err)
	}
	s.log.Info().Int64("paper_id", paperID).Int64("user_id", actorID).Msg("paper modified")
	return &updated, nil
}

// Delete removes a paper owned by actorID together with its stored file.
func (s *PaperService) Delete(ctx context.Context, actorID, paperID int64) (*domain.Paper, error) {
	paper, err := s.papers.FindByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if !paper.OwnedBy(actorID) {
		s.log.Warn().Int64("paper_id", paperID).Int64("user_id", actorID).Msg("delete rejected: not the owner")
		return nil, domain.ErrForbidden
	}

	if err := s.papers.Delete(ctx, paperID); err != nil {
		return nil, err
	}
	if err := s.files.Remove(ctx, paper.FilePath); err != nil {
		s.log.Warn().Err(err).Str("path", paper.FilePath).Msg("failed to remove stored file")
	}

	s.log.Info().Int64("paper_id", paperID).Int64("user_id", actorID).Msg("paper deleted")
	notify(ctx, s.notes, s.log, fmt.Sprintf("Paper '%s' deleted successfully.", paper.Title))
	return paper, nil
}

// Collaborate resolves the paper owner so the caller can open a chat thread.
// The owner is not asked for consent.
func (s *PaperService) Collaborate(ctx context.Context, actorID, paperID int64) (*ports.Collaboration, error) {
	paper, err := s.papers.FindByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.FindByID(ctx, paper.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("collaborate: paper %d has no owner: %w", paperID, err)
		}
		return nil, err
	}

	s.log.Info().Int64("paper_id", paperID).Int64("user_id", actorID).Int64("owner_id", owner.ID).Msg("collaboration requested")
	notify(ctx, s.notes, s.log, fmt.Sprintf("Collaboration request sent to %s for paper '%s'.", owner.Username, paper.Title))
	return &ports.Collaboration{Paper: paper, Owner: owner}, nil
}
