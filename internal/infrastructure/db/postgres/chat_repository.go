package postgres

import (
	"context"
	"fmt"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

type ChatRepository struct {
	db DBTX
}

func NewChatRepository(db DBTX) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	query :=
		`INSERT INTO chat_messages (sender_id, recipient_id, message)
		 VALUES ($1, $2, $3)
		 RETURNING id`

	created := *msg
	err := r.db.QueryRowContext(ctx, query, msg.SenderID, msg.RecipientID, msg.Message).Scan(&created.ID)
	if err != nil {
		switch pgCode(err) {
		case codeForeignKeyViolation:
			return nil, domain.ErrUserNotFound
		case codeStringTooLong:
			return nil, fmt.Errorf("%w: message too long", domain.ErrValidation)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *ChatRepository) Conversation(ctx context.Context, a, b int64) ([]*domain.ChatMessage, error) {
	query :=
		`SELECT id, sender_id, recipient_id, message FROM chat_messages
		 WHERE (sender_id = $1 AND recipient_id = $2)
		    OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, a, b)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.ChatMessage
	for rows.Next() {
		m := &domain.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Message); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return msgs, nil
}

func (r *ChatRepository) Partners(ctx context.Context, userID int64) ([]*domain.User, error) {
	query :=
		`SELECT DISTINCT u.id, u.first_name, u.last_name, u.username, u.email, u.password_hash
		 FROM users u
		 JOIN chat_messages m
		   ON (m.sender_id = u.id AND m.recipient_id = $1)
		   OR (m.recipient_id = u.id AND m.sender_id = $1)
		 WHERE u.id <> $1
		 ORDER BY u.username`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}
