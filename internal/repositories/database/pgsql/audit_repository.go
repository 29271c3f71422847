package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAuditSink appends audit entries to the audit_logs table.
// It writes on the pool, outside any ledger transaction.
type PgxAuditSink struct {
	pool *pgxpool.Pool
}

// NewPgxAuditSink creates an audit sink backed by audit_logs.
func NewPgxAuditSink(pool *pgxpool.Pool) *PgxAuditSink {
	return &PgxAuditSink{pool: pool}
}

var _ portsrepo.AuditSink = (*PgxAuditSink)(nil)

func (s *PgxAuditSink) Log(ctx context.Context, entry domain.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	query := `
		INSERT INTO audit_logs (audit_id, company_id, action, entity_type, entity_id, actor_id, details, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := s.pool.Exec(ctx, query,
		uuid.NewString(), entry.CompanyID, string(entry.Action), entry.EntityType,
		entry.EntityID, entry.ActorID, details, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("%w: audit log write failed: %v", apperrors.ErrDependency, err)
	}
	return nil
}
