package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

func (v *view) FindShiftByID(_ context.Context, shiftID string) (*domain.Shift, error) {
	shift, ok := v.state.shifts[shiftID]
	if !ok {
		return nil, fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shiftID)
	}
	return &shift, nil
}

func (v *view) FindOpenShiftByWorker(_ context.Context, workerID string) (*domain.Shift, error) {
	for _, shift := range v.state.shifts {
		if shift.WorkerID == workerID && shift.IsOpen() {
			s := shift
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: no open shift for worker %s", apperrors.ErrNotFound, workerID)
}

func (v *view) ListShifts(_ context.Context, filter domain.ShiftFilter) ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0)
	for _, shift := range v.state.shifts {
		if !matchShift(shift, filter) {
			continue
		}
		shifts = append(shifts, shift)
	}
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].StartTime.Equal(shifts[j].StartTime) {
			return shifts[i].StartTime.After(shifts[j].StartTime)
		}
		return shifts[i].ShiftID > shifts[j].ShiftID
	})
	return shifts, nil
}

func matchShift(shift domain.Shift, f domain.ShiftFilter) bool {
	switch {
	case f.CompanyID != "" && shift.CompanyID != f.CompanyID:
		return false
	case f.TerminalID != "" && shift.TerminalID != f.TerminalID:
		return false
	case f.WorkerID != "" && shift.WorkerID != f.WorkerID:
		return false
	case f.OpenOnly && !shift.IsOpen():
		return false
	}
	return inRange(shift.StartTime, f.From, f.To)
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

// LockShift is a lookup; the store mutex already serializes transactions.
func (v *view) LockShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return v.FindShiftByID(ctx, shiftID)
}

func (v *view) LockOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := v.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: shift %s is not open", apperrors.ErrNotFound, shiftID)
	}
	return shift, nil
}

func (v *view) SaveShift(_ context.Context, shift domain.Shift) error {
	if _, exists := v.state.shifts[shift.ShiftID]; exists {
		return fmt.Errorf("%w: shift %s already exists", apperrors.ErrConflict, shift.ShiftID)
	}
	if shift.IsOpen() {
		for _, other := range v.state.shifts {
			if other.WorkerID == shift.WorkerID && other.IsOpen() {
				return fmt.Errorf("%w: worker %s already has an open shift", apperrors.ErrConflict, shift.WorkerID)
			}
		}
	}
	v.state.shifts[shift.ShiftID] = shift
	return nil
}

func (v *view) CloseShift(_ context.Context, shiftID string, endTime time.Time, notes string, updatedBy string) error {
	shift, ok := v.state.shifts[shiftID]
	if !ok || !shift.IsOpen() {
		return fmt.Errorf("%w: open shift %s", apperrors.ErrNotFound, shiftID)
	}
	end := endTime
	shift.EndTime = &end
	shift.Notes = notes
	shift.LastUpdatedAt = endTime
	shift.LastUpdatedBy = updatedBy
	v.state.shifts[shiftID] = shift
	return nil
}
