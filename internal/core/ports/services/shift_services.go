package services

import (
	"context"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// ShiftReaderSvc defines read operations for shifts
type ShiftReaderSvc interface {
	// GetActiveShift returns the worker's open shift at any terminal, or nil.
	GetActiveShift(ctx context.Context, actor domain.Actor, workerID string) (*domain.Shift, error)

	// GetCurrentShift returns the worker's open shift at the terminal, or nil.
	GetCurrentShift(ctx context.Context, actor domain.Actor, workerID, terminalID string) (*domain.Shift, error)

	GetShift(ctx context.Context, actor domain.Actor, shiftID string) (*domain.Shift, error)
	ListShifts(ctx context.Context, actor domain.Actor, params dto.ListShiftsParams) ([]domain.Shift, error)
}

// ShiftWriterSvc defines the shift lifecycle
type ShiftWriterSvc interface {
	// StartShift opens a shift for the actor. A second open shift is apperrors.ErrConflict.
	StartShift(ctx context.Context, actor domain.Actor, req dto.StartShiftRequest) (*domain.Shift, error)

	// EndShift closes the actor's open shift and runs cleanup. When cleanup
	// fails the closed shift is still returned together with an *apperrors.CleanupError.
	EndShift(ctx context.Context, actor domain.Actor, shiftID string, req dto.EndShiftRequest) (*domain.EndShiftResult, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
