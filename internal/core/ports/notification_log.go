package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// NotificationLog is the bounded, shared activity log. Implementations must
// be safe for concurrent use and evict the oldest entries past capacity.
type NotificationLog interface {
	Append(ctx context.Context, message string) error
	// List returns the retained entries, oldest first.
	List(ctx context.Context) ([]domain.Notification, error)
}
