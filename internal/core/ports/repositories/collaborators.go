package repositories

import (
	"context"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// AuditSink accepts audit entries. It is write-only from the engine's side.
type AuditSink interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

// PumpRegistry is the read-only pump/tank collaborator.
type PumpRegistry interface {
	// GetPump returns the pump with its current tank price.
	// Missing pumps are apperrors.ErrNotFound, an unreachable registry is apperrors.ErrDependency.
	GetPump(ctx context.Context, pumpID string) (*domain.Pump, error)
}
