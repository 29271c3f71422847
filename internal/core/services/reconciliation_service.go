package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/utils/accounting"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// reconciliationService computes shift and terminal summaries from persisted state.
type reconciliationService struct {
	BaseService
	workbook portssvc.MetricsWorkbookRenderer
	slip     portssvc.ShiftSlipRenderer
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(ledger portsrepo.LedgerStore, workbook portssvc.MetricsWorkbookRenderer, slip portssvc.ShiftSlipRenderer, opts ...ServiceOption) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService: newBaseService(ledger, nil, opts...),
		workbook:    workbook,
		slip:        slip,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) GetShiftLedger(ctx context.Context, actor domain.Actor, shiftID string) (*domain.ShiftLedger, error) {
	return readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) (*domain.ShiftLedger, error) {
		ledger, err := r.LoadShiftLedger(ctx, shiftID)
		if err != nil {
			return nil, err
		}
		if err := requireTenant(actor, ledger.Shift.CompanyID, domain.EntityShift, shiftID); err != nil {
			return nil, err
		}
		return ledger, nil
	})
}

func (s *reconciliationService) SummarizeShift(ctx context.Context, actor domain.Actor, shiftID string) (*domain.ShiftSummary, error) {
	ledger, err := s.GetShiftLedger(ctx, actor, shiftID)
	if err != nil {
		return nil, err
	}
	summary := accounting.SummarizeShift(*ledger)
	return &summary, nil
}

func (s *reconciliationService) SummarizeTerminal(ctx context.Context, actor domain.Actor, terminalID string, period domain.Period, anchor time.Time) (*domain.TerminalMetrics, error) {
	window, err := accounting.PeriodWindow(period, anchor)
	if err != nil {
		return nil, err
	}
	ledgers, err := readLedger(ctx, &s.BaseService, func(r portsrepo.LedgerReader) ([]domain.ShiftLedger, error) {
		return r.LoadTerminalLedgers(ctx, actor.CompanyID, terminalID, window.From, window.To)
	})
	if err != nil {
		return nil, err
	}
	metrics := accounting.SummarizeTerminal(terminalID, window, ledgers)
	s.LogDebug(ctx, "Terminal metrics computed",
		slog.String("terminal_id", terminalID),
		slog.String("period", string(period)),
		slog.Int("shift_count", metrics.ShiftCount))
	return &metrics, nil
}

func (s *reconciliationService) ExportTerminalMetrics(ctx context.Context, actor domain.Actor, terminalID string, period domain.Period, anchor time.Time) (*domain.Document, error) {
	metrics, err := s.SummarizeTerminal(ctx, actor, terminalID, period, anchor)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.RenderMetrics(*metrics)
	if err != nil {
		s.LogError(ctx, err, "Failed to render metrics workbook", slog.String("terminal_id", terminalID))
		return nil, fmt.Errorf("rendering metrics workbook: %w", err)
	}
	return &domain.Document{
		FileName:    fmt.Sprintf("terminal_%s_%s_%s.xlsx", terminalID, period, metrics.From.Format("2006-01-02")),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *reconciliationService) RenderShiftSlip(ctx context.Context, actor domain.Actor, shiftID string) (*domain.Document, error) {
	ledger, err := s.GetShiftLedger(ctx, actor, shiftID)
	if err != nil {
		return nil, err
	}
	summary := accounting.SummarizeShift(*ledger)
	content, err := s.slip.RenderSlip(*ledger, summary)
	if err != nil {
		s.LogError(ctx, err, "Failed to render shift slip", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("rendering shift slip: %w", err)
	}
	return &domain.Document{
		FileName:    fmt.Sprintf("shift_%s.pdf", shiftID),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}
