package service

import (
	"context"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type NotificationService struct {
	notes ports.NotificationLog
}

func NewNotificationService(notes ports.NotificationLog) *NotificationService {
	return &NotificationService{notes: notes}
}

func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.notes.List(ctx)
}
