package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/SscSPs/fuel_station_app/internal/utils/accounting"
)

// meterReadingService tracks pump counters within shifts.
type meterReadingService struct {
	BaseService
	pumps portsrepo.PumpRegistry
}

// NewMeterReadingService creates a new MeterReadingService.
func NewMeterReadingService(ledger portsrepo.LedgerStore, audit portsrepo.AuditSink, pumps portsrepo.PumpRegistry, opts ...ServiceOption) portssvc.MeterReadingSvcFacade {
	return &meterReadingService{
		BaseService: newBaseService(ledger, audit, opts...),
		pumps:       pumps,
	}
}

var _ portssvc.MeterReadingSvcFacade = (*meterReadingService)(nil)

// lookupPump distinguishes a missing pump from an unreachable registry.
func (s *meterReadingService) lookupPump(ctx context.Context, actor domain.Actor, pumpID string) (*domain.Pump, error) {
	pump, err := s.pumps.GetPump(ctx, pumpID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(http.StatusFailedDependency, "pump registry unavailable", fmt.Errorf("%w: %v", apperrors.ErrDependency, err))
	}
	if pump.CompanyID != actor.CompanyID {
		return nil, fmt.Errorf("%w: pump %s", apperrors.ErrNotFound, pumpID)
	}
	return pump, nil
}

func (s *meterReadingService) OpenReading(ctx context.Context, actor domain.Actor, req dto.OpenReadingRequest) (*domain.MeterReading, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	reading, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.MeterReading, error) {
		shift, err := requireOwnOpenShift(ctx, tx, actor, req.ShiftID)
		if err != nil {
			return nil, err
		}
		pump, err := s.lookupPump(ctx, actor, req.PumpID)
		if err != nil {
			return nil, err
		}
		if pump.TerminalID != shift.TerminalID {
			return nil, fmt.Errorf("%w: pump %s is not on terminal %s", apperrors.ErrValidation, req.PumpID, shift.TerminalID)
		}
		if err := tx.LockPump(ctx, req.PumpID); err != nil {
			return nil, err
		}

		existing, err := tx.FindOpenReading(ctx, req.PumpID, req.ShiftID)
		if err == nil {
			return nil, fmt.Errorf("%w: pump %s already has open reading %s on this shift", apperrors.ErrConflict, req.PumpID, existing.ReadingID)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

		floor := pump.InitialCounter
		last, err := tx.LastClosingReading(ctx, req.PumpID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			floor = *last
		}
		if req.Opening.LessThan(floor) {
			return nil, fmt.Errorf("%w: opening %s is below the pump's last closing %s", apperrors.ErrValidation, req.Opening, floor)
		}

		reading := domain.MeterReading{
			ReadingID: uuid.NewString(),
			CompanyID: actor.CompanyID,
			PumpID:    req.PumpID,
			ShiftID:   req.ShiftID,
			UserID:    actor.UserID,
			Opening:   req.Opening,
			CreatedAt: s.Now(),
		}
		if err := tx.SaveReading(ctx, reading); err != nil {
			return nil, err
		}
		trail.record(domain.AuditCreate, domain.EntityMeterReading, reading.ReadingID, map[string]any{
			"pumpID":  req.PumpID,
			"shiftID": req.ShiftID,
			"opening": req.Opening.String(),
		})
		return &reading, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Meter reading opened", slog.String("reading_id", reading.ReadingID), slog.String("pump_id", reading.PumpID))
	return reading, nil
}

func (s *meterReadingService) CloseReading(ctx context.Context, actor domain.Actor, readingID string, req dto.CloseReadingRequest) (*domain.MeterReading, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	reading, err := runAudited(ctx, &s.BaseService, actor, func(tx portsrepo.LedgerTx, trail *auditTrail) (*domain.MeterReading, error) {
		reading, err := tx.FindReadingByID(ctx, readingID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, reading.CompanyID, domain.EntityMeterReading, readingID); err != nil {
			return nil, err
		}
		if reading.UserID != actor.UserID && actor.Role != domain.RoleSupervisor && actor.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: reading %s belongs to another user", apperrors.ErrForbidden, readingID)
		}
		if _, err := tx.LockShift(ctx, reading.ShiftID); err != nil {
			return nil, err
		}
		if err := tx.LockPump(ctx, reading.PumpID); err != nil {
			return nil, err
		}
		if !reading.IsOpen() {
			return nil, fmt.Errorf("%w: meter reading %s is already closed", apperrors.ErrNotFound, readingID)
		}
		if req.Closing.LessThan(reading.Opening) {
			return nil, fmt.Errorf("%w: closing %s is below opening %s", apperrors.ErrValidation, req.Closing, reading.Opening)
		}

		// Priced at the closing event, not when the reading was opened.
		pump, err := s.lookupPump(ctx, actor, reading.PumpID)
		if err != nil {
			return nil, err
		}

		closing := req.Closing
		price := pump.PricePerLiter
		now := s.Now()
		reading.Closing = &closing
		reading.PricePerLiter = &price
		expected := accounting.ExpectedAmount(reading.LitersSold(), price)
		reading.ExpectedAmount = &expected
		reading.ClosedAt = &now

		if err := tx.CloseReading(ctx, *reading); err != nil {
			return nil, err
		}
		trail.record(domain.AuditClose, domain.EntityMeterReading, readingID, map[string]any{
			"closing":        closing.String(),
			"litersSold":     reading.LitersSold().String(),
			"pricePerLiter":  price.String(),
			"expectedAmount": expected.String(),
		})
		return reading, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDependency) {
			s.LogError(ctx, err, "Pump registry unavailable while closing reading", slog.String("reading_id", readingID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Meter reading closed",
		slog.String("reading_id", readingID),
		slog.String("liters_sold", reading.LitersSold().String()))
	return reading, nil
}

func (s *meterReadingService) GetReading(ctx context.Context, actor domain.Actor, readingID string) (*domain.MeterReading, error) {
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) (*domain.MeterReading, error) {
		reading, err := r.FindReadingByID(ctx, readingID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, reading.CompanyID, domain.EntityMeterReading, readingID); err != nil {
			return nil, err
		}
		return reading, nil
	})
}

func (s *meterReadingService) ListReadings(ctx context.Context, actor domain.Actor, params dto.ListReadingsParams) (*domain.Page[domain.MeterReading], error) {
	if err := s.validateRequest(params); err != nil {
		return nil, err
	}
	filter := params.ToFilter(actor.CompanyID)
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) (*domain.Page[domain.MeterReading], error) {
		readings, next, err := r.ListReadings(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &domain.Page[domain.MeterReading]{Items: readings, NextToken: next}, nil
	})
}
