package services

import (
	"context"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// SalaryAdjustmentSvcFacade defines the salary adjustment generator
type SalaryAdjustmentSvcFacade interface {
	// RecordDiscrepancy creates one adjustment for a nonzero discrepancy and returns nil on an exact match.
	// Every call is a distinct event; calling twice creates two adjustments.
	RecordDiscrepancy(ctx context.Context, actor domain.Actor, req dto.RecordDiscrepancyRequest) (*domain.SalaryAdjustment, error)

	// RecordShiftVariance records the cash variance of a closed shift against its worker.
	RecordShiftVariance(ctx context.Context, actor domain.Actor, shiftID string) (*domain.SalaryAdjustment, error)

	ListAdjustments(ctx context.Context, actor domain.Actor, params dto.ListAdjustmentsParams) ([]domain.SalaryAdjustment, error)
}
