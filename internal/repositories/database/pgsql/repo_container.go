package pgsql

import (
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres ledger, pump registry and audit table.
// Callers may replace Audit with a composite sink.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Ledger: newPgxLedgerStore(dbPool),
		Audit:  NewPgxAuditSink(dbPool),
		Pumps:  newPgxPumpRegistry(dbPool),
	}
}
