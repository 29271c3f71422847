package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerStore runs ledger operations inside pgx transactions.
type PgxLedgerStore struct {
	BaseRepository
}

func newPgxLedgerStore(pool *pgxpool.Pool) *PgxLedgerStore {
	return &PgxLedgerStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerStore = (*PgxLedgerStore)(nil)

// WithinTx executes fn in one transaction and commits only if fn succeeds.
func (s *PgxLedgerStore) WithinTx(ctx context.Context, fn func(tx portsrepo.LedgerTx) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.Rollback(ctx, tx); rbErr != nil {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr)
		}
	}()

	if err := fn(&ledgerTx{q: tx}); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// ReadOnly executes fn against a single repeatable-read snapshot.
func (s *PgxLedgerStore) ReadOnly(ctx context.Context, fn func(r portsrepo.LedgerReader) error) error {
	tx, err := s.BeginReadOnly(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.Rollback(ctx, tx); rbErr != nil {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr)
		}
	}()

	if err := fn(&ledgerTx{q: tx}); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// ledgerTx implements every ledger reader and writer over one querier.
type ledgerTx struct {
	q querier
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)
