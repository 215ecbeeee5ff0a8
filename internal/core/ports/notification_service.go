package ports

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

type NotificationService interface {
	List(ctx context.Context) ([]domain.Notification, error)
}
