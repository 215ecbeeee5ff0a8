package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// ChatRepository persists direct messages.
type ChatRepository interface {
	// Create returns domain.ErrUserNotFound when sender or recipient is unknown.
	Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	// Conversation returns every message between a and b, in either
	// direction, in insertion order. Conversation(a, b) == Conversation(b, a).
	Conversation(ctx context.Context, a, b int64) ([]*domain.ChatMessage, error)
	// Partners returns the distinct users, other than userID, that appear as
	// sender or recipient in any message involving userID.
	Partners(ctx context.Context, userID int64) ([]*domain.User, error)
}
