package services

import (
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/platform/config"
)

// Renderers groups the document renderers used by the reconciliation service.
type Renderers struct {
	Workbook portssvc.MetricsWorkbookRenderer
	Slip     portssvc.ShiftSlipRenderer
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderers Renderers, opts ...ServiceOption) *portssvc.ServiceContainer {
	policy := ShiftPolicy{
		ForceClose:          cfg.ForceClosePolicy,
		AutoVerifyHandovers: cfg.AutoVerifyHandovers,
	}

	return &portssvc.ServiceContainer{
		Shift:            NewShiftService(repos.Ledger, repos.Audit, policy, opts...),
		MeterReading:     NewMeterReadingService(repos.Ledger, repos.Audit, repos.Pumps, opts...),
		Collection:       NewCollectionService(repos.Ledger, repos.Audit, opts...),
		Reconciliation:   NewReconciliationService(repos.Ledger, renderers.Workbook, renderers.Slip, opts...),
		SalaryAdjustment: NewSalaryAdjustmentService(repos.Ledger, repos.Audit, opts...),
	}
}
