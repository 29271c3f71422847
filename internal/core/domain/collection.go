package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSubmission is cash a worker declares collected during a shift.
type CashSubmission struct {
	SubmissionID string          `json:"submissionID"`
	CompanyID    string          `json:"companyID"`
	ShiftID      string          `json:"shiftID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Verified     bool            `json:"verified"`
	VerifiedBy   *string         `json:"verifiedBy,omitempty"`
	VerifiedAt   *time.Time      `json:"verifiedAt,omitempty"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CashHandover is a custody transfer of cash between two users within a shift.
type CashHandover struct {
	HandoverID   string          `json:"handoverID"`
	CompanyID    string          `json:"companyID"`
	ShiftID      string          `json:"shiftID"`
	FromUserID   string          `json:"fromUserID"`
	ToUserID     string          `json:"toUserID"`
	Amount       decimal.Decimal `json:"amount"`
	Verified     bool            `json:"verified"`
	VerifiedBy   *string         `json:"verifiedBy,omitempty"`
	VerifiedAt   *time.Time      `json:"verifiedAt,omitempty"`
	AutoVerified bool            `json:"autoVerified"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PaymentMethod is the channel of an electronic payment.
type PaymentMethod string

const (
	PaymentPOS         PaymentMethod = "pos"
	PaymentTransfer    PaymentMethod = "transfer"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCard        PaymentMethod = "card"
)

// PaymentStatus moves pending -> verified or pending -> rejected, never further.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// ElectronicPayment is a non-cash payment recorded against a shift.
type ElectronicPayment struct {
	PaymentID       string          `json:"paymentID"`
	CompanyID       string          `json:"companyID"`
	ShiftID         string          `json:"shiftID"`
	UserID          string          `json:"userID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber"`
	Status          PaymentStatus   `json:"status"`
	VerifiedBy      *string         `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time      `json:"verifiedAt,omitempty"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Expense is money paid out of the till during a shift. It is reported on
// its own and never changes the cash variance.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	CompanyID   string          `json:"companyID"`
	ShiftID     string          `json:"shiftID"`
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
