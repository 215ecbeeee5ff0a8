package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type ChatService struct {
	chats ports.ChatRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewChatService(chats ports.ChatRepository, users ports.UserRepository, log zerolog.Logger) *ChatService {
	return &ChatService{chats: chats, users: users, log: log}
}

func (s *ChatService) Partners(ctx context.Context, userID int64) ([]*domain.User, error) {
	return s.chats.Partners(ctx, userID)
}

func (s *ChatService) Thread(ctx context.Context, userID, recipientID int64) (*ports.Thread, error) {
	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.chats.Conversation(ctx, userID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	// A thread only ever shows messages between its two participants.
	thread := make([]*domain.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if !m.Involves(userID, recipientID) {
			s.log.Warn().Int64("message_id", m.ID).Msg("conversation returned a foreign message")
			continue
		}
		thread = append(thread, m)
	}
	return &ports.Thread{Recipient: recipient, Messages: thread}, nil
}

func (s *ChatService) Send(ctx context.Context, senderID, recipientID int64, message string) (*domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	msg, err := s.chats.Create(ctx, &domain.ChatMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     message,
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	s.log.Debug().Int64("sender_id", senderID).Int64("recipient_id", recipientID).Msg("message sent")
	return msg, nil
}
