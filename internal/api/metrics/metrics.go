// Package metrics defines and registers the custom Prometheus metrics for
// Scholar Connect. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics register with the default registry on import through promauto.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

const namespace = "scholarconnect"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "mismatch", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Paper metrics ─────────────────────────────────────────────────────────────

// PapersUploadedTotal counts successful uploads.
// Label:
//   - category: the paper category
var PapersUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "papers_uploaded_total",
		Help:      "Total number of papers uploaded, by category.",
	},
	[]string{"category"},
)

var PapersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "papers_deleted_total",
		Help:      "Total number of papers deleted.",
	},
)

var CollaborationRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collaboration_requests_total",
		Help:      "Total number of collaboration requests.",
	},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages sent.",
	},
)

// NotificationsTotal counts notification log appends.
// Label:
//   - result: "ok" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications appended to the activity log.",
	},
	[]string{"result"},
)

// countingLog counts appends on the wrapped log.
type countingLog struct {
	ports.NotificationLog
}

// InstrumentNotificationLog wraps log so every Append is counted.
func InstrumentNotificationLog(log ports.NotificationLog) ports.NotificationLog {
	return countingLog{NotificationLog: log}
}

func (l countingLog) Append(ctx context.Context, message string) error {
	err := l.NotificationLog.Append(ctx, message)
	if err != nil {
		NotificationsTotal.WithLabelValues("error").Inc()
		return err
	}
	NotificationsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (l countingLog) List(ctx context.Context) ([]domain.Notification, error) {
	return l.NotificationLog.List(ctx)
}
