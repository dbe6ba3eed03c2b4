package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación de AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, picture_path, name, brand, model, specifications, series_number,
	quantity, location, status, business, type, inventory_type, created_at, updated_at`

// Create persiste un activo nuevo.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, picture_path, name, brand, model, specifications, series_number,
			quantity, location, status, business, type, inventory_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		asset.ID, asset.PicturePath, asset.Name, asset.Brand, asset.Model,
		asset.Specifications, asset.SeriesNumber, asset.Quantity, asset.Location,
		asset.Status, asset.Business, asset.Type, asset.InventoryType,
		asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. Devuelve nil si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene el activo bloqueando la fila (SELECT FOR UPDATE).
// Sostiene los invariantes de conservación de ambos desgloses dentro de una tx.
func (r *AssetRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Asset, error) {
	return r.get(ctx, id, true)
}

func (r *AssetRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var a entity.Asset
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PicturePath, &a.Name, &a.Brand, &a.Model, &a.Specifications,
		&a.SeriesNumber, &a.Quantity, &a.Location, &a.Status, &a.Business,
		&a.Type, &a.InventoryType, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// Update actualiza los campos descriptivos y la cantidad declarada.
// Bajar la cantidad NO revalida los desgloses existentes (comportamiento aceptado).
func (r *AssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET picture_path = $2, name = $3, brand = $4, model = $5, specifications = $6,
			series_number = $7, quantity = $8, location = $9, status = $10, type = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		asset.ID, asset.PicturePath, asset.Name, asset.Brand, asset.Model,
		asset.Specifications, asset.SeriesNumber, asset.Quantity, asset.Location,
		asset.Status, asset.Type, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// ListByBusiness lista activos de un negocio y tipo de inventario con los
// agregados de adquisición derivados en la misma consulta (nunca almacenados).
func (r *AssetRepo) ListByBusiness(ctx context.Context, business, inventoryType, search, typeFilter string) ([]*repository.AssetListRow, error) {
	query := `
		SELECT ` + assetColumns + `,
			COALESCE((SELECT SUM(l.acquisition_cost * l.quantity) FROM acquisition_lots l WHERE l.asset_id = assets.id), 0) AS total_spent,
			COALESCE((SELECT SUM(l.quantity) FROM acquisition_lots l WHERE l.asset_id = assets.id), 0) AS total_acquired_qty,
			(SELECT MAX(l.acquisition_date) FROM acquisition_lots l WHERE l.asset_id = assets.id) AS latest_acquisition_date
		FROM assets
		WHERE business = $1 AND inventory_type = $2`
	args := []any{business, inventoryType}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (id::TEXT ILIKE $%d OR name ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d
			OR specifications ILIKE $%d OR series_number ILIKE $%d OR location ILIKE $%d)`, n, n, n, n, n, n, n)
	}
	if typeFilter != "" {
		args = append(args, typeFilter)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*repository.AssetListRow
	for rows.Next() {
		var row repository.AssetListRow
		a := &row.Asset
		if err := rows.Scan(
			&a.ID, &a.PicturePath, &a.Name, &a.Brand, &a.Model, &a.Specifications,
			&a.SeriesNumber, &a.Quantity, &a.Location, &a.Status, &a.Business,
			&a.Type, &a.InventoryType, &a.CreatedAt, &a.UpdatedAt,
			&row.Totals.TotalSpent, &row.Totals.TotalQty, &row.Totals.LatestDate,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Delete elimina un activo; la cascada del esquema elimina asignaciones y lotes.
func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
