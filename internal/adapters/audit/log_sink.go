// Package audit holds AuditSink implementations that are not tied to the ledger store.
package audit

import (
	"context"
	"log/slog"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
)

// LogSink writes each audit entry as one structured log record on the
// request-scoped logger.
type LogSink struct{}

// NewLogSink creates a LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

var _ portsrepo.AuditSink = (*LogSink)(nil)

func (s *LogSink) Log(ctx context.Context, entry domain.AuditEntry) error {
	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "audit",
		slog.String("company_id", entry.CompanyID),
		slog.String("action", string(entry.Action)),
		slog.String("entity_type", entry.EntityType),
		slog.String("entity_id", entry.EntityID),
		slog.String("actor_id", entry.ActorID),
		slog.Time("occurred_at", entry.OccurredAt),
		slog.Any("details", entry.Details),
	)
	return nil
}
