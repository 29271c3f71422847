package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodWindow(t *testing.T) {
	// Wednesday
	anchor := time.Date(2024, 6, 5, 17, 45, 0, 0, time.UTC)

	testCases := []struct {
		period domain.Period
		from   time.Time
		to     time.Time
	}{
		{domain.PeriodDay, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)},
		{domain.PeriodWeek, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{domain.PeriodMonth, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(string(tc.period), func(t *testing.T) {
			w, err := PeriodWindow(tc.period, anchor)
			require.NoError(t, err)
			assert.Equal(t, tc.from, w.From)
			assert.Equal(t, tc.to, w.To)
			assert.True(t, w.Contains(anchor))
			assert.False(t, w.Contains(w.To))
		})
	}
}

func TestPeriodWindow_WeekEdges(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)
	w, err := PeriodWindow(domain.PeriodWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), w.From)

	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	w, err = PeriodWindow(domain.PeriodWeek, monday)
	require.NoError(t, err)
	assert.Equal(t, monday, w.From)
}

func TestPeriodWindow_UsesUTC(t *testing.T) {
	// 00:30 on the 1st in UTC+2 is still the previous month in UTC
	loc := time.FixedZone("CAT", 2*3600)
	anchor := time.Date(2024, 7, 1, 0, 30, 0, 0, loc)

	w, err := PeriodWindow(domain.PeriodMonth, anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), w.From)
}

func TestPeriodWindow_Unknown(t *testing.T) {
	_, err := PeriodWindow("year", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
