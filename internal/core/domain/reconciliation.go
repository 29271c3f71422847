package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VarianceStatus classifies the sign of a cash variance.
type VarianceStatus string

const (
	VarianceShortage VarianceStatus = "shortage"
	VarianceExcess   VarianceStatus = "excess"
	VarianceBalanced VarianceStatus = "balanced"
)

// ShiftSummary is computed from a shift's persisted records. Unverified and
// rejected items are included.
type ShiftSummary struct {
	ShiftID            string                            `json:"shiftID"`
	TotalFuelSold      decimal.Decimal                   `json:"totalFuelSold"`
	ExpectedCash       decimal.Decimal                   `json:"expectedCash"`
	SubmittedCash      decimal.Decimal                   `json:"submittedCash"`
	HandoverTotal      decimal.Decimal                   `json:"handoverTotal"`
	ElectronicTotal    decimal.Decimal                   `json:"electronicTotal"`
	ElectronicByMethod map[PaymentMethod]decimal.Decimal `json:"electronicByMethod"`
	ExpenseTotal       decimal.Decimal                   `json:"expenseTotal"`
	TotalCollected     decimal.Decimal                   `json:"totalCollected"`
	CashVariance       decimal.Decimal                   `json:"cashVariance"`
	OpenReadings       int                               `json:"openReadings"`
	Status             VarianceStatus                    `json:"status"`
}

// Period is the size of a terminal metrics window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// TerminalMetrics aggregates shift summaries over the shifts started at a
// terminal within [From, To).
type TerminalMetrics struct {
	TerminalID         string                            `json:"terminalID"`
	Period             Period                            `json:"period"`
	From               time.Time                         `json:"from"`
	To                 time.Time                         `json:"to"`
	ShiftCount         int                               `json:"shiftCount"`
	TotalFuelSold      decimal.Decimal                   `json:"totalFuelSold"`
	ExpectedCash       decimal.Decimal                   `json:"expectedCash"`
	SubmittedCash      decimal.Decimal                   `json:"submittedCash"`
	HandoverTotal      decimal.Decimal                   `json:"handoverTotal"`
	ElectronicTotal    decimal.Decimal                   `json:"electronicTotal"`
	ElectronicByMethod map[PaymentMethod]decimal.Decimal `json:"electronicByMethod"`
	ExpenseTotal       decimal.Decimal                   `json:"expenseTotal"`
	TotalCollected     decimal.Decimal                   `json:"totalCollected"`
	CashVariance       decimal.Decimal                   `json:"cashVariance"`
	OpenReadings       int                               `json:"openReadings"`
	Shifts             []ShiftSummary                    `json:"shifts"`
}

// ShiftLedger is a shift together with every record attached to it.
type ShiftLedger struct {
	Shift              Shift
	Readings           []MeterReading
	CashSubmissions    []CashSubmission
	Handovers          []CashHandover
	ElectronicPayments []ElectronicPayment
	Expenses           []Expense
}

// Document is a rendered export.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}
