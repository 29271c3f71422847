package services

import (
	"context"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// ReconciliationSvcFacade defines the read-only reconciliation calculator
type ReconciliationSvcFacade interface {
	// SummarizeShift is a pure function of the shift's persisted records.
	SummarizeShift(ctx context.Context, actor domain.Actor, shiftID string) (*domain.ShiftSummary, error)

	// GetShiftLedger returns the shift with all attached records.
	GetShiftLedger(ctx context.Context, actor domain.Actor, shiftID string) (*domain.ShiftLedger, error)

	// SummarizeTerminal aggregates shifts started at the terminal in the period containing anchor.
	SummarizeTerminal(ctx context.Context, actor domain.Actor, terminalID string, period domain.Period, anchor time.Time) (*domain.TerminalMetrics, error)

	ExportTerminalMetrics(ctx context.Context, actor domain.Actor, terminalID string, period domain.Period, anchor time.Time) (*domain.Document, error)
	RenderShiftSlip(ctx context.Context, actor domain.Actor, shiftID string) (*domain.Document, error)
}

// MetricsWorkbookRenderer renders terminal metrics as a spreadsheet.
type MetricsWorkbookRenderer interface {
	RenderMetrics(metrics domain.TerminalMetrics) ([]byte, error)
}

// ShiftSlipRenderer renders a printable shift reconciliation slip.
type ShiftSlipRenderer interface {
	RenderSlip(ledger domain.ShiftLedger, summary domain.ShiftSummary) ([]byte, error)
}
