package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSubmission is a row of the cash_submissions table.
type CashSubmission struct {
	SubmissionID string          `db:"submission_id"`
	CompanyID    string          `db:"company_id"`
	ShiftID      string          `db:"shift_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Verified     bool            `db:"verified"`
	VerifiedBy   *string         `db:"verified_by"`
	VerifiedAt   *time.Time      `db:"verified_at"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
}

// CashHandover is a row of the cash_handovers table.
type CashHandover struct {
	HandoverID   string          `db:"handover_id"`
	CompanyID    string          `db:"company_id"`
	ShiftID      string          `db:"shift_id"`
	FromUserID   string          `db:"from_user_id"`
	ToUserID     string          `db:"to_user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Verified     bool            `db:"verified"`
	VerifiedBy   *string         `db:"verified_by"`
	VerifiedAt   *time.Time      `db:"verified_at"`
	AutoVerified bool            `db:"auto_verified"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ElectronicPayment is a row of the electronic_payments table.
// reference_number is the empty string when absent; only non-empty values are unique.
type ElectronicPayment struct {
	PaymentID       string          `db:"payment_id"`
	CompanyID       string          `db:"company_id"`
	ShiftID         string          `db:"shift_id"`
	UserID          string          `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethod   string          `db:"payment_method"`
	ReferenceNumber string          `db:"reference_number"`
	Status          string          `db:"status"`
	VerifiedBy      *string         `db:"verified_by"`
	VerifiedAt      *time.Time      `db:"verified_at"`
	Notes           string          `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Expense is a row of the shift_expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	CompanyID   string          `db:"company_id"`
	ShiftID     string          `db:"shift_id"`
	UserID      string          `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
