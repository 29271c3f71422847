package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fuel_station_app/internal/core/ports/repositories"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPumpRegistry reads pumps and their tank price from the registry tables.
type PgxPumpRegistry struct {
	pool *pgxpool.Pool
}

func newPgxPumpRegistry(pool *pgxpool.Pool) *PgxPumpRegistry {
	return &PgxPumpRegistry{pool: pool}
}

var _ portsrepo.PumpRegistry = (*PgxPumpRegistry)(nil)

// GetPump returns the pump with the current price of the tank it draws from.
func (r *PgxPumpRegistry) GetPump(ctx context.Context, pumpID string) (*domain.Pump, error) {
	query := `
		SELECT p.pump_id, p.company_id, p.terminal_id, p.tank_id, t.price_per_liter, p.initial_counter
		FROM pumps p
		JOIN tanks t ON t.tank_id = p.tank_id
		WHERE p.pump_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, pumpID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusFailedDependency, "pump registry unavailable", fmt.Errorf("%w: %v", apperrors.ErrDependency, err))
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Pump])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pump %s", apperrors.ErrNotFound, pumpID)
		}
		return nil, apperrors.NewAppError(http.StatusFailedDependency, "pump registry unavailable", fmt.Errorf("%w: %v", apperrors.ErrDependency, err))
	}
	pump := mapping.ToDomainPump(m)
	return &pump, nil
}
