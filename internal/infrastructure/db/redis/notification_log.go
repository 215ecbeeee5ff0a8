package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

const notificationsKey = "scholarconnect:notifications"

// NotificationLog keeps the newest entries in a Redis list, newest at the head.
// LPUSH and LTRIM run in one MULTI/EXEC so the list never exceeds capacity.
type NotificationLog struct {
	client   *redis.Client
	key      string
	capacity int64
	now      func() time.Time
}

// NewNotificationLog creates a NotificationLog bounded to capacity entries.
func NewNotificationLog(client *redis.Client, capacity int) *NotificationLog {
	if capacity <= 0 {
		capacity = 1
	}
	return &NotificationLog{
		client:   client,
		key:      notificationsKey,
		capacity: int64(capacity),
		now:      time.Now,
	}
}

func (l *NotificationLog) Append(ctx context.Context, message string) error {
	data, err := encodeEntry(domain.Notification{Message: message, CreatedAt: l.now().UTC()})
	if err != nil {
		return err
	}

	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, l.key, data)
		pipe.LTrim(ctx, l.key, 0, l.capacity-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	return nil
}

// List returns the retained entries oldest first.
func (l *NotificationLog) List(ctx context.Context) ([]domain.Notification, error) {
	raw, err := l.client.LRange(ctx, l.key, 0, l.capacity-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return decodeEntries(raw)
}

func encodeEntry(n domain.Notification) (string, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encode notification: %w", err)
	}
	return string(data), nil
}

// decodeEntries reverses the newest-first list into chronological order.
// Entries that are not valid JSON are kept as plain messages.
func decodeEntries(raw []string) ([]domain.Notification, error) {
	out := make([]domain.Notification, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var n domain.Notification
		if err := json.Unmarshal([]byte(raw[i]), &n); err != nil {
			n = domain.Notification{Message: raw[i]}
		}
		out = append(out, n)
	}
	return out, nil
}
