package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

func (v *view) FindReadingByID(_ context.Context, readingID string) (*domain.MeterReading, error) {
	r, ok := v.state.readings[readingID]
	if !ok {
		return nil, fmt.Errorf("%w: meter reading %s", apperrors.ErrNotFound, readingID)
	}
	return &r, nil
}

func (v *view) FindOpenReading(_ context.Context, pumpID, shiftID string) (*domain.MeterReading, error) {
	for _, r := range v.state.readings {
		if r.PumpID == pumpID && r.ShiftID == shiftID && r.IsOpen() {
			found := r
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: no open reading for pump %s", apperrors.ErrNotFound, pumpID)
}

func (v *view) LastClosingReading(_ context.Context, pumpID string) (*decimal.Decimal, error) {
	var last *decimal.Decimal
	for _, r := range v.state.readings {
		if r.PumpID != pumpID || r.IsOpen() {
			continue
		}
		if last == nil || r.Closing.GreaterThan(*last) {
			c := *r.Closing
			last = &c
		}
	}
	return last, nil
}

func (v *view) ListReadings(_ context.Context, filter domain.ReadingFilter) ([]domain.MeterReading, *string, error) {
	var afterAt time.Time
	var afterID string
	if filter.NextToken != nil && *filter.NextToken != "" {
		at, id, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterAt, afterID = at, id
	}

	readings := make([]domain.MeterReading, 0)
	for _, r := range v.state.readings {
		if !matchReading(r, filter) {
			continue
		}
		if afterID != "" && !isAfter(r.CreatedAt, r.ReadingID, afterAt, afterID) {
			continue
		}
		readings = append(readings, r)
	}
	sort.Slice(readings, func(i, j int) bool {
		return isAfter(readings[j].CreatedAt, readings[j].ReadingID, readings[i].CreatedAt, readings[i].ReadingID)
	})

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(readings) <= limit {
		return readings, nil, nil
	}
	page := readings[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.ReadingID)
	return page, &token, nil
}

// isAfter orders by (createdAt, id).
func isAfter(at time.Time, id string, refAt time.Time, refID string) bool {
	if !at.Equal(refAt) {
		return at.After(refAt)
	}
	return id > refID
}

func matchReading(r domain.MeterReading, f domain.ReadingFilter) bool {
	switch {
	case f.CompanyID != "" && r.CompanyID != f.CompanyID:
		return false
	case f.UserID != "" && r.UserID != f.UserID:
		return false
	case f.PumpID != "" && r.PumpID != f.PumpID:
		return false
	case f.ShiftID != "" && r.ShiftID != f.ShiftID:
		return false
	}
	return inRange(r.CreatedAt, f.From, f.To)
}

// LockPump is a no-op; the store mutex already serializes transactions.
func (v *view) LockPump(_ context.Context, _ string) error {
	return nil
}

func (v *view) SaveReading(_ context.Context, reading domain.MeterReading) error {
	if _, exists := v.state.readings[reading.ReadingID]; exists {
		return fmt.Errorf("%w: meter reading %s already exists", apperrors.ErrConflict, reading.ReadingID)
	}
	if reading.IsOpen() {
		for _, other := range v.state.readings {
			if other.PumpID == reading.PumpID && other.ShiftID == reading.ShiftID && other.IsOpen() {
				return fmt.Errorf("%w: pump %s already has an open reading on this shift", apperrors.ErrConflict, reading.PumpID)
			}
		}
	}
	v.state.readings[reading.ReadingID] = reading
	return nil
}

func (v *view) CloseReading(_ context.Context, reading domain.MeterReading) error {
	current, ok := v.state.readings[reading.ReadingID]
	if !ok || !current.IsOpen() {
		return fmt.Errorf("%w: open meter reading %s", apperrors.ErrNotFound, reading.ReadingID)
	}
	current.Closing = reading.Closing
	current.PricePerLiter = reading.PricePerLiter
	current.ExpectedAmount = reading.ExpectedAmount
	current.ForceClosed = reading.ForceClosed
	current.ClosedAt = reading.ClosedAt
	v.state.readings[reading.ReadingID] = current
	return nil
}

func (v *view) ForceCloseOpenReadings(_ context.Context, shiftID string, closedAt time.Time) ([]domain.MeterReading, error) {
	closed := make([]domain.MeterReading, 0)
	for id, r := range v.state.readings {
		if r.ShiftID != shiftID || !r.IsOpen() {
			continue
		}
		closing := r.Opening
		expected := decimal.Zero
		at := closedAt
		r.Closing = &closing
		r.ExpectedAmount = &expected
		r.ForceClosed = true
		r.ClosedAt = &at
		v.state.readings[id] = r
		closed = append(closed, r)
	}
	sort.Slice(closed, func(i, j int) bool {
		return isAfter(closed[j].CreatedAt, closed[j].ReadingID, closed[i].CreatedAt, closed[i].ReadingID)
	})
	return closed, nil
}
