package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

// notify appends to the shared log. The log is advisory, so a failed append
// is logged and never fails the enclosing operation.
func notify(ctx context.Context, notes ports.NotificationLog, log zerolog.Logger, msg string) {
	if notes == nil {
		return
	}
	if err := notes.Append(ctx, msg); err != nil {
		log.Warn().Err(err).Str("notification", msg).Msg("failed to append notification")
	}
}
