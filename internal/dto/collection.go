package dto

import (
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitCashRequest defines a cash declaration.
type SubmitCashRequest struct {
	ShiftID string          `json:"shiftID" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"gt=0,money"`
	Notes   string          `json:"notes" binding:"max=1000"`
}

// RecordHandoverRequest defines a custody transfer to another user.
type RecordHandoverRequest struct {
	ShiftID  string          `json:"shiftID" binding:"required"`
	ToUserID string          `json:"toUserID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"gt=0,money"`
	Notes    string          `json:"notes" binding:"max=1000"`
}

// RecordElectronicPaymentRequest defines a non-cash payment.
type RecordElectronicPaymentRequest struct {
	ShiftID         string               `json:"shiftID" binding:"required"`
	Amount          decimal.Decimal      `json:"amount" binding:"gt=0,money"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=pos transfer mobile_money card"`
	ReferenceNumber string               `json:"referenceNumber" binding:"max=100"`
	Notes           string               `json:"notes" binding:"max=1000"`
}

// VerifyElectronicPaymentRequest carries the verifier's decision.
type VerifyElectronicPaymentRequest struct {
	Decision domain.PaymentStatus `json:"decision" binding:"required,oneof=verified rejected"`
}

// RecordExpenseRequest defines money paid out of the till.
type RecordExpenseRequest struct {
	ShiftID     string          `json:"shiftID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0,money"`
	Category    string          `json:"category" binding:"required,max=50"`
	Description string          `json:"description" binding:"max=1000"`
}

// ShiftCollectionsResponse lists everything collected during a shift.
type ShiftCollectionsResponse struct {
	ShiftID            string                     `json:"shiftID"`
	CashSubmissions    []domain.CashSubmission    `json:"cashSubmissions"`
	Handovers          []domain.CashHandover      `json:"handovers"`
	ElectronicPayments []domain.ElectronicPayment `json:"electronicPayments"`
	Expenses           []domain.Expense           `json:"expenses"`
}

// ToShiftCollectionsResponse extracts the collections of a ledger.
func ToShiftCollectionsResponse(l domain.ShiftLedger) ShiftCollectionsResponse {
	return ShiftCollectionsResponse{
		ShiftID:            l.Shift.ShiftID,
		CashSubmissions:    nonNil(l.CashSubmissions),
		Handovers:          nonNil(l.Handovers),
		ElectronicPayments: nonNil(l.ElectronicPayments),
		Expenses:           nonNil(l.Expenses),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
