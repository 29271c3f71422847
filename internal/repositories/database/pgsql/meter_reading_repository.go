package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/SscSPs/fuel_station_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const readingColumns = `reading_id, company_id, pump_id, shift_id, user_id, opening, closing,
	price_per_liter, expected_amount, force_closed, created_at, closed_at`

func (t *ledgerTx) FindReadingByID(ctx context.Context, readingID string) (*domain.MeterReading, error) {
	query := `SELECT ` + readingColumns + ` FROM meter_readings WHERE reading_id = $1;`
	rows, err := t.q.Query(ctx, query, readingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meter reading %s: %w", readingID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MeterReading])
	if err != nil {
		return nil, notFoundOr(err, "meter reading "+readingID)
	}
	reading := mapping.ToDomainMeterReading(m)
	return &reading, nil
}

func (t *ledgerTx) FindOpenReading(ctx context.Context, pumpID, shiftID string) (*domain.MeterReading, error) {
	query := `SELECT ` + readingColumns + ` FROM meter_readings WHERE pump_id = $1 AND shift_id = $2 AND closing IS NULL;`
	rows, err := t.q.Query(ctx, query, pumpID, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open reading for pump %s: %w", pumpID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MeterReading])
	if err != nil {
		return nil, notFoundOr(err, "open reading for pump "+pumpID)
	}
	reading := mapping.ToDomainMeterReading(m)
	return &reading, nil
}

// LastClosingReading returns the highest closing counter ever recorded for the pump.
func (t *ledgerTx) LastClosingReading(ctx context.Context, pumpID string) (*decimal.Decimal, error) {
	var last decimal.NullDecimal
	err := t.q.QueryRow(ctx, `SELECT MAX(closing) FROM meter_readings WHERE pump_id = $1;`, pumpID).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to load last closing reading for pump %s: %w", pumpID, err)
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Decimal, nil
}

// ListReadings retrieves a page of readings ordered by (created_at, reading_id).
func (t *ledgerTx) ListReadings(ctx context.Context, filter domain.ReadingFilter) ([]domain.MeterReading, *string, error) {
	var w whereBuilder
	if filter.CompanyID != "" {
		w.add("company_id = $%d", filter.CompanyID)
	}
	if filter.UserID != "" {
		w.add("user_id = $%d", filter.UserID)
	}
	if filter.PumpID != "" {
		w.add("pump_id = $%d", filter.PumpID)
	}
	if filter.ShiftID != "" {
		w.add("shift_id = $%d", filter.ShiftID)
	}
	if filter.From != nil {
		w.add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("created_at < $%d", *filter.To)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		afterAt, afterID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		at := w.next(afterAt)
		id := w.next(afterID)
		w.addRaw(fmt.Sprintf("(created_at, reading_id) > (%s, %s)", at, id))
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query := `SELECT ` + readingColumns + ` FROM meter_readings` + w.sql() +
		fmt.Sprintf(` ORDER BY created_at, reading_id LIMIT %d;`, limit+1)

	rows, err := t.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meter readings: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MeterReading])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan meter readings: %w", err)
	}

	readings := mapping.ToDomainMeterReadings(ms)
	if len(readings) <= limit {
		return readings, nil, nil
	}
	page := readings[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.ReadingID)
	return page, &token, nil
}

// LockPump takes a transaction-scoped advisory lock keyed by the pump id.
// The pumps table belongs to the registry, so no row lock is taken there.
func (t *ledgerTx) LockPump(ctx context.Context, pumpID string) error {
	if _, err := t.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, pumpID); err != nil {
		return fmt.Errorf("failed to lock pump %s: %w", pumpID, err)
	}
	return nil
}

func (t *ledgerTx) SaveReading(ctx context.Context, reading domain.MeterReading) error {
	m := mapping.ToModelMeterReading(reading)
	query := `
		INSERT INTO meter_readings (reading_id, company_id, pump_id, shift_id, user_id, opening, closing,
			price_per_liter, expected_amount, force_closed, created_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := t.q.Exec(ctx, query,
		m.ReadingID, m.CompanyID, m.PumpID, m.ShiftID, m.UserID, m.Opening, m.Closing,
		m.PricePerLiter, m.ExpectedAmount, m.ForceClosed, m.CreatedAt, m.ClosedAt,
	)
	if err != nil {
		return wrapWriteErr(err, "pump "+m.PumpID+" already has an open reading on this shift", "failed to save meter reading %s", m.ReadingID)
	}
	return nil
}

func (t *ledgerTx) CloseReading(ctx context.Context, reading domain.MeterReading) error {
	m := mapping.ToModelMeterReading(reading)
	query := `
		UPDATE meter_readings
		SET closing = $2, price_per_liter = $3, expected_amount = $4, force_closed = $5, closed_at = $6
		WHERE reading_id = $1 AND closing IS NULL;
	`
	tag, err := t.q.Exec(ctx, query, m.ReadingID, m.Closing, m.PricePerLiter, m.ExpectedAmount, m.ForceClosed, m.ClosedAt)
	if err != nil {
		return fmt.Errorf("failed to close meter reading %s: %w", m.ReadingID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: open meter reading %s", apperrors.ErrNotFound, m.ReadingID)
	}
	return nil
}

// ForceCloseOpenReadings closes every open reading of the shift at zero volume.
func (t *ledgerTx) ForceCloseOpenReadings(ctx context.Context, shiftID string, closedAt time.Time) ([]domain.MeterReading, error) {
	query := `
		UPDATE meter_readings
		SET closing = opening, expected_amount = 0, force_closed = TRUE, closed_at = $2
		WHERE shift_id = $1 AND closing IS NULL
		RETURNING ` + readingColumns + `;`
	rows, err := t.q.Query(ctx, query, shiftID, closedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to force-close readings of shift %s: %w", shiftID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MeterReading])
	if err != nil {
		return nil, fmt.Errorf("failed to scan force-closed readings: %w", err)
	}
	closed := mapping.ToDomainMeterReadings(ms)
	sort.Slice(closed, func(i, j int) bool {
		if !closed[i].CreatedAt.Equal(closed[j].CreatedAt) {
			return closed[i].CreatedAt.Before(closed[j].CreatedAt)
		}
		return closed[i].ReadingID < closed[j].ReadingID
	})
	return closed, nil
}
