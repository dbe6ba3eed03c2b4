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

var _ repository.AcquisitionLotRepository = (*AcquisitionLotRepo)(nil)

// AcquisitionLotRepo implementación de AcquisitionLotRepository sobre PostgreSQL (usable con pool o tx).
type AcquisitionLotRepo struct {
	q Querier
}

// NewAcquisitionLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAcquisitionLotRepository(q Querier) *AcquisitionLotRepo {
	return &AcquisitionLotRepo{q: q}
}

const acquisitionLotColumns = `id, asset_id, acquisition_date, acquisition_cost, delivery_cost, quantity, shop_link`

// Create persiste un lote de adquisición. El chequeo de conservación lo hace
// el caso de uso con el activo bloqueado en la misma transacción.
func (r *AcquisitionLotRepo) Create(ctx context.Context, lot *entity.AcquisitionLot) error {
	query := `
		INSERT INTO acquisition_lots (id, asset_id, acquisition_date, acquisition_cost, delivery_cost, quantity, shop_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.AssetID, lot.AcquisitionDate, lot.AcquisitionCost,
		lot.DeliveryCost, lot.Quantity, lot.ShopLink,
	)
	if err != nil {
		return fmt.Errorf("insert acquisition lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve nil si no existe.
func (r *AcquisitionLotRepo) GetByID(ctx context.Context, id string) (*entity.AcquisitionLot, error) {
	query := `SELECT ` + acquisitionLotColumns + ` FROM acquisition_lots WHERE id = $1`
	var l entity.AcquisitionLot
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.AssetID, &l.AcquisitionDate, &l.AcquisitionCost,
		&l.DeliveryCost, &l.Quantity, &l.ShopLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get acquisition lot: %w", err)
	}
	return &l, nil
}

// Update modifica un lote de adquisición completo.
func (r *AcquisitionLotRepo) Update(ctx context.Context, lot *entity.AcquisitionLot) error {
	query := `
		UPDATE acquisition_lots
		SET acquisition_date = $2, acquisition_cost = $3, delivery_cost = $4, quantity = $5, shop_link = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.AcquisitionDate, lot.AcquisitionCost, lot.DeliveryCost, lot.Quantity, lot.ShopLink,
	)
	if err != nil {
		return fmt.Errorf("update acquisition lot: %w", err)
	}
	return nil
}

// ListByAsset lista los lotes de adquisición de un activo, más recientes primero.
func (r *AcquisitionLotRepo) ListByAsset(ctx context.Context, assetID string) ([]*entity.AcquisitionLot, error) {
	query := `SELECT ` + acquisitionLotColumns + ` FROM acquisition_lots WHERE asset_id = $1 ORDER BY acquisition_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("list acquisition lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.AcquisitionLot
	for rows.Next() {
		var l entity.AcquisitionLot
		if err := rows.Scan(&l.ID, &l.AssetID, &l.AcquisitionDate, &l.AcquisitionCost,
			&l.DeliveryCost, &l.Quantity, &l.ShopLink); err != nil {
			return nil, fmt.Errorf("scan acquisition lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SumByAsset suma las cantidades de los lotes; excludeID descuenta la fila que
// se está editando (vacío = ninguna).
func (r *AcquisitionLotRepo) SumByAsset(ctx context.Context, assetID, excludeID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM acquisition_lots WHERE asset_id = $1 AND id::TEXT <> $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, assetID, excludeID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum acquisition lots: %w", err)
	}
	return sum, nil
}

// TotalsByAsset agrega gasto total (costo unitario × cantidad), cantidad total
// adquirida y última fecha de adquisición. Siempre recalculado en lectura.
func (r *AcquisitionLotRepo) TotalsByAsset(ctx context.Context, assetID string) (*entity.AcquisitionTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(acquisition_cost * quantity), 0) AS total_spent,
			COALESCE(SUM(quantity), 0)                    AS total_qty,
			MAX(acquisition_date)                         AS latest_date
		FROM acquisition_lots WHERE asset_id = $1`
	var t entity.AcquisitionTotals
	if err := r.q.QueryRow(ctx, query, assetID).Scan(&t.TotalSpent, &t.TotalQty, &t.LatestDate); err != nil {
		return nil, fmt.Errorf("totals acquisition lots: %w", err)
	}
	return &t, nil
}

// Delete elimina un lote por ID.
func (r *AcquisitionLotRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM acquisition_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete acquisition lot: %w", err)
	}
	return nil
}
