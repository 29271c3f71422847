package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `shift_id, company_id, worker_id, terminal_id, start_time, end_time, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func (t *ledgerTx) queryOneShift(ctx context.Context, query string, what string, args ...any) (*domain.Shift, error) {
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		return nil, notFoundOr(err, what)
	}
	shift := mapping.ToDomainShift(m)
	return &shift, nil
}

// FindShiftByID retrieves a shift by its ID.
func (t *ledgerTx) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	return t.queryOneShift(ctx, query, "shift "+shiftID, shiftID)
}

// FindOpenShiftByWorker retrieves the worker's open shift.
func (t *ledgerTx) FindOpenShiftByWorker(ctx context.Context, workerID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE worker_id = $1 AND end_time IS NULL;`
	return t.queryOneShift(ctx, query, "open shift of worker "+workerID, workerID)
}

// ListShifts retrieves shifts matching the filter, newest first.
func (t *ledgerTx) ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, error) {
	var w whereBuilder
	if filter.CompanyID != "" {
		w.add("company_id = $%d", filter.CompanyID)
	}
	if filter.TerminalID != "" {
		w.add("terminal_id = $%d", filter.TerminalID)
	}
	if filter.WorkerID != "" {
		w.add("worker_id = $%d", filter.WorkerID)
	}
	if filter.From != nil {
		w.add("start_time >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("start_time < $%d", *filter.To)
	}
	if filter.OpenOnly {
		w.addRaw("end_time IS NULL")
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts` + w.sql() + ` ORDER BY start_time DESC, shift_id DESC;`
	rows, err := t.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		return nil, fmt.Errorf("failed to scan shifts: %w", err)
	}
	return mapping.ToDomainShifts(ms), nil
}

// LockShift takes a row lock on the shift.
func (t *ledgerTx) LockShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1 FOR UPDATE;`
	return t.queryOneShift(ctx, query, "shift "+shiftID, shiftID)
}

// LockOpenShift takes a row lock on the shift and requires it to be open.
func (t *ledgerTx) LockOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := t.LockShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: shift %s is not open", apperrors.ErrNotFound, shiftID)
	}
	return shift, nil
}

// SaveShift inserts a new shift. The partial index on open shifts per worker
// turns a concurrent second start into a conflict.
func (t *ledgerTx) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (shift_id, company_id, worker_id, terminal_id, start_time, end_time, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := t.q.Exec(ctx, query,
		m.ShiftID, m.CompanyID, m.WorkerID, m.TerminalID, m.StartTime, m.EndTime, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "worker "+m.WorkerID+" already has an open shift", "failed to save shift %s", m.ShiftID)
	}
	return nil
}

// CloseShift ends an open shift.
func (t *ledgerTx) CloseShift(ctx context.Context, shiftID string, endTime time.Time, notes string, updatedBy string) error {
	query := `
		UPDATE shifts
		SET end_time = $2, notes = $3, last_updated_at = $2, last_updated_by = $4
		WHERE shift_id = $1 AND end_time IS NULL;
	`
	tag, err := t.q.Exec(ctx, query, shiftID, endTime, notes, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to close shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: open shift %s", apperrors.ErrNotFound, shiftID)
	}
	return nil
}
