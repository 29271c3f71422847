package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/core/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/SscSPs/fuel_station_app/internal/repositories/database/memory"
)

var (
	workerA  = domain.Actor{UserID: "worker-a", Role: domain.RoleWorker, CompanyID: "company-1", TerminalID: "terminal-1"}
	workerB  = domain.Actor{UserID: "worker-b", Role: domain.RoleWorker, CompanyID: "company-1", TerminalID: "terminal-1"}
	cashier  = domain.Actor{UserID: "cashier-1", Role: domain.RoleCashier, CompanyID: "company-1", TerminalID: "terminal-1"}
	boss     = domain.Actor{UserID: "supervisor-1", Role: domain.RoleSupervisor, CompanyID: "company-1"}
	outsider = domain.Actor{UserID: "worker-x", Role: domain.RoleSupervisor, CompanyID: "company-2", TerminalID: "terminal-9"}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func testPumps() *memory.PumpRegistry {
	return memory.NewPumpRegistry(
		domain.Pump{PumpID: "pump-1", CompanyID: "company-1", TerminalID: "terminal-1", TankID: "tank-1", PricePerLiter: dec("2.50"), InitialCounter: dec("1000")},
		domain.Pump{PumpID: "pump-2", CompanyID: "company-1", TerminalID: "terminal-1", TankID: "tank-1", PricePerLiter: dec("2.50"), InitialCounter: dec("0")},
		domain.Pump{PumpID: "pump-3", CompanyID: "company-1", TerminalID: "terminal-1", TankID: "tank-2", PricePerLiter: dec("3"), InitialCounter: dec("0")},
		domain.Pump{PumpID: "pump-t2", CompanyID: "company-1", TerminalID: "terminal-2", TankID: "tank-3", PricePerLiter: dec("2"), InitialCounter: dec("0")},
		domain.Pump{PumpID: "pump-x", CompanyID: "company-2", TerminalID: "terminal-9", TankID: "tank-9", PricePerLiter: dec("1"), InitialCounter: dec("0")},
	)
}

// testClock advances one second on every read so records get distinct timestamps.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// recordingSink keeps every audit entry it receives.
type recordingSink struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingSink) Log(_ context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingSink) actionsFor(entityType string) []domain.AuditAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var actions []domain.AuditAction
	for _, e := range s.entries {
		if e.EntityType == entityType {
			actions = append(actions, e.Action)
		}
	}
	return actions
}

// MockAuditSink is a mock type for the AuditSink interface
type MockAuditSink struct {
	mock.Mock
}

func (m *MockAuditSink) Log(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// unavailableRegistry simulates a pump registry that cannot be reached.
type unavailableRegistry struct{}

func (unavailableRegistry) GetPump(context.Context, string) (*domain.Pump, error) {
	return nil, errors.New("dial tcp 10.0.0.7:5432: connection refused")
}

// cleanupFailingStore behaves like the wrapped store except that force-closing readings fails.
type cleanupFailingStore struct {
	*memory.Store
}

func (s cleanupFailingStore) WithinTx(ctx context.Context, fn func(tx portsrepo.LedgerTx) error) error {
	return s.Store.WithinTx(ctx, func(tx portsrepo.LedgerTx) error {
		return fn(cleanupFailingTx{LedgerTx: tx})
	})
}

type cleanupFailingTx struct {
	portsrepo.LedgerTx
}

func (cleanupFailingTx) ForceCloseOpenReadings(context.Context, string, time.Time) ([]domain.MeterReading, error) {
	return nil, errors.New("statement timeout")
}

// engine wires every service over one in-memory ledger.
type engine struct {
	store       *memory.Store
	pumps       *memory.PumpRegistry
	audit       *recordingSink
	clock       *testClock
	shifts      portssvc.ShiftSvcFacade
	readings    portssvc.MeterReadingSvcFacade
	collections portssvc.CollectionSvcFacade
	recon       portssvc.ReconciliationSvcFacade
	salary      portssvc.SalaryAdjustmentSvcFacade
}

func newEngine(policy services.ShiftPolicy) *engine {
	e := &engine{
		store: memory.NewStore(),
		pumps: testPumps(),
		audit: &recordingSink{},
		clock: newTestClock(time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)),
	}
	opt := services.WithClock(e.clock.Now)
	e.shifts = services.NewShiftService(e.store, e.audit, policy, opt)
	e.readings = services.NewMeterReadingService(e.store, e.audit, e.pumps, opt)
	e.collections = services.NewCollectionService(e.store, e.audit, opt)
	e.recon = services.NewReconciliationService(e.store, nil, nil, opt)
	e.salary = services.NewSalaryAdjustmentService(e.store, e.audit, opt)
	return e
}

func (e *engine) startShift(t *testing.T, actor domain.Actor) *domain.Shift {
	t.Helper()
	shift, err := e.shifts.StartShift(context.Background(), actor, dto.StartShiftRequest{})
	require.NoError(t, err)
	return shift
}

func (e *engine) openReading(t *testing.T, actor domain.Actor, shiftID, pumpID, opening string) *domain.MeterReading {
	t.Helper()
	reading, err := e.readings.OpenReading(context.Background(), actor, dto.OpenReadingRequest{
		PumpID:  pumpID,
		ShiftID: shiftID,
		Opening: dec(opening),
	})
	require.NoError(t, err)
	return reading
}

func (e *engine) closeReading(t *testing.T, actor domain.Actor, readingID, closing string) *domain.MeterReading {
	t.Helper()
	reading, err := e.readings.CloseReading(context.Background(), actor, readingID, dto.CloseReadingRequest{Closing: dec(closing)})
	require.NoError(t, err)
	return reading
}
