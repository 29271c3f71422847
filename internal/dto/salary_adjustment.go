package dto

import (
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordDiscrepancyRequest defines a measured discrepancy for an employee.
type RecordDiscrepancyRequest struct {
	EmployeeID     string               `json:"employeeID" binding:"required"`
	ExpectedVolume decimal.Decimal      `json:"expectedVolume" binding:"gte=0,liters"`
	ActualVolume   decimal.Decimal      `json:"actualVolume" binding:"gte=0,liters"`
	ReferenceID    string               `json:"referenceID" binding:"required"`
	ReferenceType  domain.ReferenceType `json:"referenceType" binding:"required,oneof=shift delivery"`
	Reason         string               `json:"reason" binding:"max=500"`
}

// ListAdjustmentsParams defines query parameters for listing adjustments.
type ListAdjustmentsParams struct {
	EmployeeID string    `form:"employeeID"`
	From       time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To         time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// ToFilter converts params to a store filter scoped to the company.
func (p ListAdjustmentsParams) ToFilter(companyID string) domain.AdjustmentFilter {
	return domain.AdjustmentFilter{
		CompanyID:  companyID,
		EmployeeID: p.EmployeeID,
		From:       timePtr(p.From),
		To:         dayAfter(p.To),
	}
}

// RecordDiscrepancyResponse reports whether an adjustment was created.
type RecordDiscrepancyResponse struct {
	Created    bool                     `json:"created"`
	Adjustment *domain.SalaryAdjustment `json:"adjustment,omitempty"`
}

// ListAdjustmentsResponse wraps a list of adjustments.
type ListAdjustmentsResponse struct {
	Adjustments []domain.SalaryAdjustment `json:"adjustments"`
}
