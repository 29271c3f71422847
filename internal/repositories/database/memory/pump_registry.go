package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PumpRegistry is a map-backed pump/tank registry.
type PumpRegistry struct {
	mu    sync.RWMutex
	pumps map[string]domain.Pump
}

// NewPumpRegistry creates a registry holding the given pumps.
func NewPumpRegistry(pumps ...domain.Pump) *PumpRegistry {
	r := &PumpRegistry{pumps: make(map[string]domain.Pump)}
	for _, p := range pumps {
		r.pumps[p.PumpID] = p
	}
	return r
}

var _ portsrepo.PumpRegistry = (*PumpRegistry)(nil)

func (r *PumpRegistry) GetPump(_ context.Context, pumpID string) (*domain.Pump, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pumps[pumpID]
	if !ok {
		return nil, fmt.Errorf("%w: pump %s", apperrors.ErrNotFound, pumpID)
	}
	return &p, nil
}

// SetPrice changes the pump's current price, as a tank price update would.
func (r *PumpRegistry) SetPrice(pumpID string, price decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pumps[pumpID]; ok {
		p.PricePerLiter = price
		r.pumps[pumpID] = p
	}
}
