package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	entries []domain.AuditEntry
	err     error
}

func (r *recordingSink) Log(_ context.Context, entry domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return r.err
}

func sampleEntry() domain.AuditEntry {
	return domain.AuditEntry{
		CompanyID:  "co-1",
		Action:     domain.AuditShiftStart,
		EntityType: domain.EntityShift,
		EntityID:   "shift-1",
		ActorID:    "worker-1",
		OccurredAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestFanoutSink_WritesToAllSinks(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	sink := NewFanoutSink(a, nil, b)

	require.NoError(t, sink.Log(context.Background(), sampleEntry()))
	assert.Len(t, a.entries, 1)
	assert.Len(t, b.entries, 1)
}

func TestFanoutSink_JoinsFailuresAndKeepsWriting(t *testing.T) {
	boom := errors.New("boom")
	a, b := &recordingSink{err: boom}, &recordingSink{}
	sink := NewFanoutSink(a, b)

	err := sink.Log(context.Background(), sampleEntry())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, b.entries, 1)
}

func TestSelect(t *testing.T) {
	store := &recordingSink{}

	s, err := Select("postgres", store)
	require.NoError(t, err)
	assert.Same(t, store, s)

	s, err = Select("log", store)
	require.NoError(t, err)
	assert.IsType(t, &LogSink{}, s)
	assert.NoError(t, s.Log(context.Background(), sampleEntry()))

	s, err = Select("both", store)
	require.NoError(t, err)
	require.NoError(t, s.Log(context.Background(), sampleEntry()))
	assert.Len(t, store.entries, 1)

	_, err = Select("kafka", store)
	assert.Error(t, err)
}
