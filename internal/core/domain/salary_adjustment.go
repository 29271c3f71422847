package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType is the direction of a salary adjustment.
type AdjustmentType string

const (
	AdjustmentShortage AdjustmentType = "shortage"
	AdjustmentExcess   AdjustmentType = "excess"
)

// ReferenceType names the event a salary adjustment points back to.
type ReferenceType string

const (
	ReferenceShift    ReferenceType = "shift"
	ReferenceDelivery ReferenceType = "delivery"
)

// SalaryAdjustment is an immutable compensating entry for a nonzero discrepancy.
// Corrections are new adjustments, never edits.
type SalaryAdjustment struct {
	AdjustmentID   string          `json:"adjustmentID"`
	CompanyID      string          `json:"companyID"`
	EmployeeID     string          `json:"employeeID"`
	Amount         decimal.Decimal `json:"amount"`
	AdjustmentType AdjustmentType  `json:"adjustmentType"`
	Reason         string          `json:"reason"`
	ReferenceID    string          `json:"referenceID"`
	ReferenceType  ReferenceType   `json:"referenceType"`
	AdjustedBy     string          `json:"adjustedBy"`
	AdjustmentDate time.Time       `json:"adjustmentDate"`
}

// AdjustmentFilter narrows ListAdjustments.
type AdjustmentFilter struct {
	CompanyID  string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}
