package services

import (
	"context"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/dto"
)

// MeterReadingSvcFacade defines the meter reading tracker
type MeterReadingSvcFacade interface {
	// OpenReading starts a pump reading on the actor's open shift.
	OpenReading(ctx context.Context, actor domain.Actor, req dto.OpenReadingRequest) (*domain.MeterReading, error)

	// CloseReading records the closing counter and prices the liters at the current pump price.
	CloseReading(ctx context.Context, actor domain.Actor, readingID string, req dto.CloseReadingRequest) (*domain.MeterReading, error)

	GetReading(ctx context.Context, actor domain.Actor, readingID string) (*domain.MeterReading, error)
	ListReadings(ctx context.Context, actor domain.Actor, params dto.ListReadingsParams) (*domain.Page[domain.MeterReading], error)
}
