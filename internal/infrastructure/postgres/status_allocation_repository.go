package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.StatusAllocationRepository = (*StatusAllocationRepo)(nil)

// StatusAllocationRepo implementación de StatusAllocationRepository sobre PostgreSQL (usable con pool o tx).
type StatusAllocationRepo struct {
	q Querier
}

// NewStatusAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusAllocationRepository(q Querier) *StatusAllocationRepo {
	return &StatusAllocationRepo{q: q}
}

// Create persiste una asignación de estado. El chequeo de conservación lo hace
// el caso de uso con el activo bloqueado en la misma transacción.
func (r *StatusAllocationRepo) Create(ctx context.Context, alloc *entity.StatusAllocation) error {
	query := `INSERT INTO status_allocations (id, asset_id, status, quantity) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, alloc.ID, alloc.AssetID, alloc.Status, alloc.Quantity)
	if err != nil {
		return fmt.Errorf("insert status allocation: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID. Devuelve nil si no existe.
func (r *StatusAllocationRepo) GetByID(ctx context.Context, id string) (*entity.StatusAllocation, error) {
	query := `SELECT id, asset_id, status, quantity FROM status_allocations WHERE id = $1`
	var a entity.StatusAllocation
	err := r.q.QueryRow(ctx, query, id).Scan(&a.ID, &a.AssetID, &a.Status, &a.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status allocation: %w", err)
	}
	return &a, nil
}

// Update modifica estado y cantidad de una asignación.
func (r *StatusAllocationRepo) Update(ctx context.Context, alloc *entity.StatusAllocation) error {
	query := `UPDATE status_allocations SET status = $2, quantity = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, alloc.ID, alloc.Status, alloc.Quantity)
	if err != nil {
		return fmt.Errorf("update status allocation: %w", err)
	}
	return nil
}

// ListByAsset lista las asignaciones de estado de un activo.
func (r *StatusAllocationRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.StatusAllocation, error) {
	query := `SELECT id, asset_id, status, quantity FROM status_allocations WHERE asset_id = $1 ORDER BY status ASC`
	rows, err := r.q.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("list status allocations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StatusAllocation
	for rows.Next() {
		var a entity.StatusAllocation
		if err := rows.Scan(&a.ID, &a.AssetID, &a.Status, &a.Quantity); err != nil {
			return nil, fmt.Errorf("scan status allocation: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SumByAsset suma las cantidades asignadas; excludeID descuenta la fila que se
// está editando (vacío = ninguna).
func (r *StatusAllocationRepo) SumByAsset(ctx context.Context, assetID, excludeID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM status_allocations WHERE asset_id = $1 AND id::TEXT <> $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, assetID, excludeID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum status allocations: %w", err)
	}
	return sum, nil
}

// Delete elimina una asignación por ID.
func (r *StatusAllocationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM status_allocations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete status allocation: %w", err)
	}
	return nil
}
