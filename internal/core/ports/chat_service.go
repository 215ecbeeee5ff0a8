package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// Thread is the conversation between the current user and Recipient.
type Thread struct {
	Recipient *domain.User
	Messages  []*domain.ChatMessage
}

type ChatService interface {
	Partners(ctx context.Context, userID int64) ([]*domain.User, error)
	Thread(ctx context.Context, userID, recipientID int64) (*Thread, error)
	Send(ctx context.Context, senderID, recipientID int64, message string) (*domain.ChatMessage, error)
}
