package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAdjustment is a row of the salary_adjustments table.
type SalaryAdjustment struct {
	AdjustmentID   string          `db:"adjustment_id"`
	CompanyID      string          `db:"company_id"`
	EmployeeID     string          `db:"employee_id"`
	Amount         decimal.Decimal `db:"amount"`
	AdjustmentType string          `db:"adjustment_type"`
	Reason         string          `db:"reason"`
	ReferenceID    string          `db:"reference_id"`
	ReferenceType  string          `db:"reference_type"`
	AdjustedBy     string          `db:"adjusted_by"`
	AdjustmentDate time.Time       `db:"adjustment_date"`
}
