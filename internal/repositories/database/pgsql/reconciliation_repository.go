package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// LoadShiftLedger loads a shift with all of its records.
func (t *ledgerTx) LoadShiftLedger(ctx context.Context, shiftID string) (*domain.ShiftLedger, error) {
	shift, err := t.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	ledgers, err := t.attachRecords(ctx, []domain.Shift{*shift})
	if err != nil {
		return nil, err
	}
	return &ledgers[0], nil
}

// LoadTerminalLedgers loads the ledgers of every shift started at the terminal in [from, to).
func (t *ledgerTx) LoadTerminalLedgers(ctx context.Context, companyID, terminalID string, from, to time.Time) ([]domain.ShiftLedger, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shifts
		WHERE company_id = $1 AND terminal_id = $2 AND start_time >= $3 AND start_time < $4
		ORDER BY start_time, shift_id;
	`
	rows, err := t.q.Query(ctx, query, companyID, terminalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query terminal shifts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Shift])
	if err != nil {
		return nil, fmt.Errorf("failed to scan terminal shifts: %w", err)
	}
	return t.attachRecords(ctx, mapping.ToDomainShifts(ms))
}

// attachRecords loads the records of all given shifts with one query per table.
func (t *ledgerTx) attachRecords(ctx context.Context, shifts []domain.Shift) ([]domain.ShiftLedger, error) {
	ledgers := make([]domain.ShiftLedger, len(shifts))
	if len(shifts) == 0 {
		return ledgers, nil
	}
	index := make(map[string]int, len(shifts))
	ids := make([]string, len(shifts))
	for i, s := range shifts {
		ledgers[i].Shift = s
		index[s.ShiftID] = i
		ids[i] = s.ShiftID
	}

	readings, err := queryByShift[models.MeterReading](ctx, t.q, readingColumns, "meter_readings", "reading_id", ids)
	if err != nil {
		return nil, err
	}
	for _, m := range readings {
		i := index[m.ShiftID]
		ledgers[i].Readings = append(ledgers[i].Readings, mapping.ToDomainMeterReading(m))
	}

	cash, err := queryByShift[models.CashSubmission](ctx, t.q, cashColumns, "cash_submissions", "submission_id", ids)
	if err != nil {
		return nil, err
	}
	for _, m := range cash {
		i := index[m.ShiftID]
		ledgers[i].CashSubmissions = append(ledgers[i].CashSubmissions, mapping.ToDomainCashSubmission(m))
	}

	handovers, err := queryByShift[models.CashHandover](ctx, t.q, handoverColumns, "cash_handovers", "handover_id", ids)
	if err != nil {
		return nil, err
	}
	for _, m := range handovers {
		i := index[m.ShiftID]
		ledgers[i].Handovers = append(ledgers[i].Handovers, mapping.ToDomainCashHandover(m))
	}

	payments, err := queryByShift[models.ElectronicPayment](ctx, t.q, paymentColumns, "electronic_payments", "payment_id", ids)
	if err != nil {
		return nil, err
	}
	for _, m := range payments {
		i := index[m.ShiftID]
		ledgers[i].ElectronicPayments = append(ledgers[i].ElectronicPayments, mapping.ToDomainElectronicPayment(m))
	}

	expenses, err := queryByShift[models.Expense](ctx, t.q, expenseColumns, "shift_expenses", "expense_id", ids)
	if err != nil {
		return nil, err
	}
	for _, m := range expenses {
		i := index[m.ShiftID]
		ledgers[i].Expenses = append(ledgers[i].Expenses, mapping.ToDomainExpense(m))
	}

	return ledgers, nil
}

// queryByShift selects rows of table whose shift_id is in ids, oldest first.
// table, columns and idColumn are constants of this package.
func queryByShift[M any](ctx context.Context, q querier, columns, table, idColumn string, ids []string) ([]M, error) {
	query := `SELECT ` + columns + ` FROM ` + table + ` WHERE shift_id = ANY($1) ORDER BY created_at, ` + idColumn + `;`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return ms, nil
}
