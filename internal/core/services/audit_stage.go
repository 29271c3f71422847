package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
)

// auditTrail collects the audit entries of one mutating operation.
type auditTrail struct {
	entries []domain.AuditEntry
}

func (t *auditTrail) record(action domain.AuditAction, entityType, entityID string, details map[string]any) {
	t.entries = append(t.entries, domain.AuditEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

// runAudited is the one place mutations reach the ledger. fn runs inside a
// single store transaction and records what it changed; after commit every
// recorded entry goes to the audit sink. Sink failures are logged as
// dependency warnings and never undo the committed mutation.
func runAudited[T any](ctx context.Context, s *BaseService, actor domain.Actor, fn func(tx portsrepo.LedgerTx, trail *auditTrail) (T, error)) (T, error) {
	var result T
	trail := &auditTrail{}

	err := s.Ledger.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		trail.entries = trail.entries[:0]
		r, err := fn(tx, trail)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	now := s.Now()
	for _, entry := range trail.entries {
		entry.CompanyID = actor.CompanyID
		entry.ActorID = actor.UserID
		entry.OccurredAt = now
		if s.Audit == nil {
			continue
		}
		if logErr := s.Audit.Log(ctx, entry); logErr != nil {
			s.LogWarn(ctx, fmt.Errorf("%w: audit sink: %v", apperrors.ErrDependency, logErr), "Failed to write audit entry",
				slog.String("action", string(entry.Action)),
				slog.String("entity_type", entry.EntityType),
				slog.String("entity_id", entry.EntityID))
		}
	}
	return result, nil
}

// readLedger runs fn against a consistent read-only view.
func readLedger[T any](ctx context.Context, s *BaseService, fn func(r portsrepo.LedgerReader) (T, error)) (T, error) {
	var result T
	err := s.Ledger.ReadOnly(ctx, func(r portsrepo.LedgerReader) error {
		v, err := fn(r)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
