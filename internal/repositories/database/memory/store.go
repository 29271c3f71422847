// Package memory provides an in-memory ledger store for tests and local runs.
// Transactions are serialized under one mutex and rolled back from a snapshot.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
)

// Store is a transactional in-memory ledger.
type Store struct {
	mu    sync.RWMutex
	state *ledgerState
}

type ledgerState struct {
	shifts      map[string]domain.Shift
	readings    map[string]domain.MeterReading
	cash        map[string]domain.CashSubmission
	handovers   map[string]domain.CashHandover
	payments    map[string]domain.ElectronicPayment
	expenses    map[string]domain.Expense
	adjustments map[string]domain.SalaryAdjustment
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{state: newLedgerState()}
}

var _ portsrepo.LedgerStore = (*Store)(nil)

func newLedgerState() *ledgerState {
	return &ledgerState{
		shifts:      make(map[string]domain.Shift),
		readings:    make(map[string]domain.MeterReading),
		cash:        make(map[string]domain.CashSubmission),
		handovers:   make(map[string]domain.CashHandover),
		payments:    make(map[string]domain.ElectronicPayment),
		expenses:    make(map[string]domain.Expense),
		adjustments: make(map[string]domain.SalaryAdjustment),
	}
}

// WithinTx executes fn within a transaction.
// For the memory store this is simulated with a snapshot + rollback on error.
func (s *Store) WithinTx(_ context.Context, fn func(tx portsrepo.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&view{state: s.state}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// ReadOnly runs fn under a shared lock.
func (s *Store) ReadOnly(_ context.Context, fn func(r portsrepo.LedgerReader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&view{state: s.state})
}

// Entity values are replaced wholesale on update, never mutated through
// their pointer fields, so copying the maps is a full snapshot.
func (l *ledgerState) clone() *ledgerState {
	return &ledgerState{
		shifts:      cloneMap(l.shifts),
		readings:    cloneMap(l.readings),
		cash:        cloneMap(l.cash),
		handovers:   cloneMap(l.handovers),
		payments:    cloneMap(l.payments),
		expenses:    cloneMap(l.expenses),
		adjustments: cloneMap(l.adjustments),
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// view implements portsrepo.LedgerTx over the locked state.
type view struct {
	state *ledgerState
}

var _ portsrepo.LedgerTx = (*view)(nil)
