package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func closedReading(opening, closing, expected string) domain.MeterReading {
	return domain.MeterReading{
		Opening:        dec(opening),
		Closing:        decPtr(closing),
		ExpectedAmount: decPtr(expected),
	}
}

func TestSummarizeShift_VarianceSign(t *testing.T) {
	testCases := []struct {
		name      string
		submitted string
		variance  string
		status    domain.VarianceStatus
	}{
		{name: "shortage", submitted: "95000", variance: "-5000", status: domain.VarianceShortage},
		{name: "excess", submitted: "105000", variance: "5000", status: domain.VarianceExcess},
		{name: "balanced", submitted: "100000", variance: "0", status: domain.VarianceBalanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := domain.ShiftLedger{
				Shift:           domain.Shift{ShiftID: "s1"},
				Readings:        []domain.MeterReading{closedReading("1000", "1200", "100000")},
				CashSubmissions: []domain.CashSubmission{{Amount: dec(tc.submitted)}},
			}

			summary := SummarizeShift(ledger)

			assert.True(t, dec("100000").Equal(summary.ExpectedCash))
			assert.True(t, dec(tc.variance).Equal(summary.CashVariance), "got %s", summary.CashVariance)
			assert.Equal(t, tc.status, summary.Status)
		})
	}
}

func TestSummarizeShift_Totals(t *testing.T) {
	ledger := domain.ShiftLedger{
		Shift: domain.Shift{ShiftID: "s1"},
		Readings: []domain.MeterReading{
			closedReading("12000", "12150.5", "97825"),
			closedReading("500", "500", "0"),
			{Opening: dec("800")}, // still open
		},
		CashSubmissions: []domain.CashSubmission{
			{Amount: dec("50000"), Verified: true},
			{Amount: dec("20000")},
		},
		Handovers: []domain.CashHandover{{Amount: dec("30000")}},
		ElectronicPayments: []domain.ElectronicPayment{
			{Amount: dec("10000"), PaymentMethod: domain.PaymentPOS, Status: domain.PaymentVerified},
			{Amount: dec("5000"), PaymentMethod: domain.PaymentPOS, Status: domain.PaymentRejected},
			{Amount: dec("2500"), PaymentMethod: domain.PaymentTransfer, Status: domain.PaymentPending},
		},
		Expenses: []domain.Expense{{Amount: dec("1500")}},
	}

	summary := SummarizeShift(ledger)

	assert.Equal(t, "s1", summary.ShiftID)
	assert.True(t, dec("150.5").Equal(summary.TotalFuelSold))
	assert.True(t, dec("97825").Equal(summary.ExpectedCash))
	assert.True(t, dec("70000").Equal(summary.SubmittedCash), "unverified submissions still count")
	assert.True(t, dec("30000").Equal(summary.HandoverTotal), "handovers are kept apart")
	assert.True(t, dec("17500").Equal(summary.ElectronicTotal), "every status counts")
	assert.True(t, dec("15000").Equal(summary.ElectronicByMethod[domain.PaymentPOS]))
	assert.True(t, dec("2500").Equal(summary.ElectronicByMethod[domain.PaymentTransfer]))
	assert.True(t, dec("1500").Equal(summary.ExpenseTotal))
	assert.True(t, dec("87500").Equal(summary.TotalCollected))
	assert.True(t, dec("-27825").Equal(summary.CashVariance), "expenses do not move variance")
	assert.Equal(t, 1, summary.OpenReadings)
}

func TestSummarizeShift_Deterministic(t *testing.T) {
	ledger := domain.ShiftLedger{
		Shift:    domain.Shift{ShiftID: "s1"},
		Readings: []domain.MeterReading{closedReading("0", "10", "6500")},
		ElectronicPayments: []domain.ElectronicPayment{
			{Amount: dec("100"), PaymentMethod: domain.PaymentCard},
			{Amount: dec("200"), PaymentMethod: domain.PaymentMobileMoney},
		},
	}

	assert.Equal(t, SummarizeShift(ledger), SummarizeShift(ledger))
}

func TestSummarizeShift_Empty(t *testing.T) {
	summary := SummarizeShift(domain.ShiftLedger{Shift: domain.Shift{ShiftID: "s1"}})

	assert.True(t, summary.TotalFuelSold.IsZero())
	assert.True(t, summary.CashVariance.IsZero())
	assert.Equal(t, domain.VarianceBalanced, summary.Status)
	assert.Empty(t, summary.ElectronicByMethod)
}

func TestSummarizeTerminal(t *testing.T) {
	window, err := PeriodWindow(domain.PeriodDay, time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	late := domain.ShiftLedger{
		Shift:           domain.Shift{ShiftID: "b", StartTime: window.From.Add(12 * time.Hour)},
		Readings:        []domain.MeterReading{closedReading("100", "110", "6000")},
		CashSubmissions: []domain.CashSubmission{{Amount: dec("6000")}},
	}
	early := domain.ShiftLedger{
		Shift:              domain.Shift{ShiftID: "a", StartTime: window.From.Add(6 * time.Hour)},
		Readings:           []domain.MeterReading{closedReading("0", "20", "12000"), {Opening: dec("5")}},
		CashSubmissions:    []domain.CashSubmission{{Amount: dec("11000")}},
		ElectronicPayments: []domain.ElectronicPayment{{Amount: dec("500"), PaymentMethod: domain.PaymentCard}},
	}

	metrics := SummarizeTerminal("t1", window, []domain.ShiftLedger{late, early})

	assert.Equal(t, "t1", metrics.TerminalID)
	assert.Equal(t, domain.PeriodDay, metrics.Period)
	assert.Equal(t, 2, metrics.ShiftCount)
	assert.True(t, dec("30").Equal(metrics.TotalFuelSold))
	assert.True(t, dec("18000").Equal(metrics.ExpectedCash))
	assert.True(t, dec("17000").Equal(metrics.SubmittedCash))
	assert.True(t, dec("17500").Equal(metrics.TotalCollected))
	assert.True(t, dec("-1000").Equal(metrics.CashVariance))
	assert.True(t, dec("500").Equal(metrics.ElectronicByMethod[domain.PaymentCard]))
	assert.Equal(t, 1, metrics.OpenReadings)
	require.Len(t, metrics.Shifts, 2)
	assert.Equal(t, "a", metrics.Shifts[0].ShiftID, "shifts are ordered by start time")
	assert.Equal(t, "b", metrics.Shifts[1].ShiftID)
}

func TestExpectedAmount(t *testing.T) {
	assert.True(t, dec("97825").Equal(ExpectedAmount(dec("150.5"), dec("650"))))
	assert.True(t, ExpectedAmount(decimal.Zero, dec("650")).IsZero())
	// 1.001 L at 1.2345 is 1.2357345, stored as 1.2357.
	assert.Equal(t, "1.2357", ExpectedAmount(dec("1.001"), dec("1.2345")).String())
}
