package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMeterReading_LitersSold(t *testing.T) {
	closing := decimal.RequireFromString("1250.75")
	tests := []struct {
		name    string
		reading MeterReading
		want    string
		open    bool
	}{
		{name: "open reading sells nothing", reading: MeterReading{Opening: decimal.NewFromInt(1000)}, want: "0", open: true},
		{name: "closed reading", reading: MeterReading{Opening: decimal.NewFromInt(1000), Closing: &closing}, want: "250.75"},
		{name: "closed at opening", reading: MeterReading{Opening: closing, Closing: &closing}, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, tt.reading.IsOpen())
			assert.True(t, decimal.RequireFromString(tt.want).Equal(tt.reading.LitersSold()), tt.reading.LitersSold().String())
		})
	}
}

func TestShift_IsOpen(t *testing.T) {
	assert.True(t, Shift{}.IsOpen())
	end := Shift{}.StartTime
	assert.False(t, Shift{EndTime: &end}.IsOpen())
}
