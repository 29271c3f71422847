package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

func (v *view) SaveSalaryAdjustment(_ context.Context, adj domain.SalaryAdjustment) error {
	v.state.adjustments[adj.AdjustmentID] = adj
	return nil
}

func (v *view) ListAdjustments(_ context.Context, filter domain.AdjustmentFilter) ([]domain.SalaryAdjustment, error) {
	adjustments := make([]domain.SalaryAdjustment, 0)
	for _, adj := range v.state.adjustments {
		if filter.CompanyID != "" && adj.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != "" && adj.EmployeeID != filter.EmployeeID {
			continue
		}
		if !inRange(adj.AdjustmentDate, filter.From, filter.To) {
			continue
		}
		adjustments = append(adjustments, adj)
	}
	sort.Slice(adjustments, func(i, j int) bool {
		return isAfter(adjustments[j].AdjustmentDate, adjustments[j].AdjustmentID, adjustments[i].AdjustmentDate, adjustments[i].AdjustmentID)
	})
	return adjustments, nil
}

func (v *view) LoadShiftLedger(ctx context.Context, shiftID string) (*domain.ShiftLedger, error) {
	shift, err := v.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	ledger := v.ledgerFor(*shift)
	return &ledger, nil
}

func (v *view) LoadTerminalLedgers(_ context.Context, companyID, terminalID string, from, to time.Time) ([]domain.ShiftLedger, error) {
	shifts := make([]domain.Shift, 0)
	for _, s := range v.state.shifts {
		if s.CompanyID == companyID && s.TerminalID == terminalID && inRange(s.StartTime, &from, &to) {
			shifts = append(shifts, s)
		}
	}
	sort.Slice(shifts, func(i, j int) bool {
		return isAfter(shifts[j].StartTime, shifts[j].ShiftID, shifts[i].StartTime, shifts[i].ShiftID)
	})

	ledgers := make([]domain.ShiftLedger, 0, len(shifts))
	for _, s := range shifts {
		ledgers = append(ledgers, v.ledgerFor(s))
	}
	return ledgers, nil
}

func (v *view) ledgerFor(shift domain.Shift) domain.ShiftLedger {
	ledger := domain.ShiftLedger{Shift: shift}
	for _, r := range v.state.readings {
		if r.ShiftID == shift.ShiftID {
			ledger.Readings = append(ledger.Readings, r)
		}
	}
	for _, c := range v.state.cash {
		if c.ShiftID == shift.ShiftID {
			ledger.CashSubmissions = append(ledger.CashSubmissions, c)
		}
	}
	for _, h := range v.state.handovers {
		if h.ShiftID == shift.ShiftID {
			ledger.Handovers = append(ledger.Handovers, h)
		}
	}
	for _, p := range v.state.payments {
		if p.ShiftID == shift.ShiftID {
			ledger.ElectronicPayments = append(ledger.ElectronicPayments, p)
		}
	}
	for _, e := range v.state.expenses {
		if e.ShiftID == shift.ShiftID {
			ledger.Expenses = append(ledger.Expenses, e)
		}
	}

	sort.Slice(ledger.Readings, func(i, j int) bool {
		a, b := ledger.Readings[i], ledger.Readings[j]
		return isAfter(b.CreatedAt, b.ReadingID, a.CreatedAt, a.ReadingID)
	})
	sort.Slice(ledger.CashSubmissions, func(i, j int) bool {
		a, b := ledger.CashSubmissions[i], ledger.CashSubmissions[j]
		return isAfter(b.CreatedAt, b.SubmissionID, a.CreatedAt, a.SubmissionID)
	})
	sort.Slice(ledger.Handovers, func(i, j int) bool {
		a, b := ledger.Handovers[i], ledger.Handovers[j]
		return isAfter(b.CreatedAt, b.HandoverID, a.CreatedAt, a.HandoverID)
	})
	sort.Slice(ledger.ElectronicPayments, func(i, j int) bool {
		a, b := ledger.ElectronicPayments[i], ledger.ElectronicPayments[j]
		return isAfter(b.CreatedAt, b.PaymentID, a.CreatedAt, a.PaymentID)
	})
	sort.Slice(ledger.Expenses, func(i, j int) bool {
		a, b := ledger.Expenses[i], ledger.Expenses[j]
		return isAfter(b.CreatedAt, b.ExpenseID, a.CreatedAt, a.ExpenseID)
	})
	return ledger
}
