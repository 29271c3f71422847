package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/models"
	"github.com/SscSPs/fuel_station_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const adjustmentColumns = `adjustment_id, company_id, employee_id, amount, adjustment_type, reason,
	reference_id, reference_type, adjusted_by, adjustment_date`

// SaveSalaryAdjustment inserts an adjustment. Rows are never updated.
func (t *ledgerTx) SaveSalaryAdjustment(ctx context.Context, adj domain.SalaryAdjustment) error {
	query := `
		INSERT INTO salary_adjustments (adjustment_id, company_id, employee_id, amount, adjustment_type, reason,
			reference_id, reference_type, adjusted_by, adjustment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := t.q.Exec(ctx, query,
		adj.AdjustmentID, adj.CompanyID, adj.EmployeeID, adj.Amount, string(adj.AdjustmentType), adj.Reason,
		adj.ReferenceID, string(adj.ReferenceType), adj.AdjustedBy, adj.AdjustmentDate,
	)
	if err != nil {
		return wrapWriteErr(err, "salary adjustment "+adj.AdjustmentID+" already exists", "failed to save salary adjustment %s", adj.AdjustmentID)
	}
	return nil
}

func (t *ledgerTx) ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]domain.SalaryAdjustment, error) {
	var w whereBuilder
	if filter.CompanyID != "" {
		w.add("company_id = $%d", filter.CompanyID)
	}
	if filter.EmployeeID != "" {
		w.add("employee_id = $%d", filter.EmployeeID)
	}
	if filter.From != nil {
		w.add("adjustment_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("adjustment_date < $%d", *filter.To)
	}

	query := `SELECT ` + adjustmentColumns + ` FROM salary_adjustments` + w.sql() + ` ORDER BY adjustment_date, adjustment_id;`
	rows, err := t.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary adjustments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SalaryAdjustment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan salary adjustments: %w", err)
	}
	return mapping.ToDomainSalaryAdjustments(ms), nil
}
