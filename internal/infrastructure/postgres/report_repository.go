package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes. Va siempre contra el
// pool: los reportes no participan en transacciones.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// PerishableMovement totales IN/OUT por producto dentro de la ventana [from, to].
func (r *ReportRepo) PerishableMovement(ctx context.Context, business string, from, to time.Time) ([]*repository.PerishableMovementRow, error) {
	const query = `
	SELECT
		p.id, p.name, p.category, p.unit,
		COALESCE((SELECT SUM(quantity) FROM delivery_events i WHERE i.product_id = p.id AND i.delivery_date BETWEEN $2 AND $3), 0) AS in_qty,
		COALESCE((SELECT SUM(quantity) FROM withdrawal_events o WHERE o.product_id = p.id AND o.out_date BETWEEN $2 AND $3), 0) AS out_qty
	FROM products p
	WHERE p.business = $1
	ORDER BY p.category ASC, p.name ASC`

	rows, err := r.pool.Query(ctx, query, business, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.PerishableMovement: %w", err)
	}
	defer rows.Close()

	var results []*repository.PerishableMovementRow
	for rows.Next() {
		var row repository.PerishableMovementRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.Unit, &row.InQty, &row.OutQty); err != nil {
			return nil, fmt.Errorf("report.PerishableMovement scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// ExpiryLots listado literal de lotes con producto y fecha de entrega;
// from/to en nil = sin ventana sobre la fecha de vencimiento.
func (r *ReportRepo) ExpiryLots(ctx context.Context, business string, from, to *time.Time) ([]*repository.ExpiryLotRow, error) {
	query := `
	SELECT l.id, p.id, p.name, i.delivery_date, l.expiry_date, l.quantity
	FROM expiry_lots l
	JOIN delivery_events i ON i.id = l.delivery_event_id
	JOIN products p ON p.id = i.product_id
	WHERE p.business = $1`
	args := []any{business}
	if from != nil && to != nil {
		args = append(args, *from, *to)
		query += fmt.Sprintf(" AND l.expiry_date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	query += " ORDER BY p.name ASC, l.expiry_date ASC NULLS LAST, i.delivery_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.ExpiryLots: %w", err)
	}
	defer rows.Close()

	var results []*repository.ExpiryLotRow
	for rows.Next() {
		var row repository.ExpiryLotRow
		if err := rows.Scan(&row.LotID, &row.ProductID, &row.ProductName, &row.DeliveryDate, &row.ExpiryDate, &row.Quantity); err != nil {
			return nil, fmt.Errorf("report.ExpiryLots scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// DeliveryLog entradas IN literales; from/to en nil = sin ventana.
func (r *ReportRepo) DeliveryLog(ctx context.Context, business string, from, to *time.Time) ([]*repository.DeliveryLogRow, error) {
	query := `
	SELECT p.id, p.name, i.delivery_date, i.quantity
	FROM delivery_events i
	JOIN products p ON p.id = i.product_id
	WHERE p.business = $1`
	args := []any{business}
	if from != nil && to != nil {
		args = append(args, *from, *to)
		query += fmt.Sprintf(" AND i.delivery_date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	query += " ORDER BY p.name ASC, i.delivery_date DESC, i.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.DeliveryLog: %w", err)
	}
	defer rows.Close()

	var results []*repository.DeliveryLogRow
	for rows.Next() {
		var row repository.DeliveryLogRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.DeliveryDate, &row.Quantity); err != nil {
			return nil, fmt.Errorf("report.DeliveryLog scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// WithdrawalLog salidas OUT literales; from/to en nil = sin ventana.
func (r *ReportRepo) WithdrawalLog(ctx context.Context, business string, from, to *time.Time) ([]*repository.WithdrawalLogRow, error) {
	query := `
	SELECT p.id, p.name, o.out_date, o.out_time, o.quantity
	FROM withdrawal_events o
	JOIN products p ON p.id = o.product_id
	WHERE p.business = $1`
	args := []any{business}
	if from != nil && to != nil {
		args = append(args, *from, *to)
		query += fmt.Sprintf(" AND o.out_date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	query += " ORDER BY p.name ASC, o.out_date DESC, o.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.WithdrawalLog: %w", err)
	}
	defer rows.Close()

	var results []*repository.WithdrawalLogRow
	for rows.Next() {
		var row repository.WithdrawalLogRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.OutDate, &row.OutTime, &row.Quantity); err != nil {
			return nil, fmt.Errorf("report.WithdrawalLog scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// AssetStatuses una fila por asignación de estado con la cantidad declarada
// del activo (la participación porcentual la calcula el caso de uso).
func (r *ReportRepo) AssetStatuses(ctx context.Context, business, inventoryType string) ([]*repository.AssetStatusRow, error) {
	const query = `
	SELECT a.id, a.name, a.type, s.status, s.quantity, a.quantity
	FROM assets a
	JOIN status_allocations s ON s.asset_id = a.id
	WHERE a.business = $1 AND a.inventory_type = $2
	ORDER BY a.name ASC, s.status ASC`

	rows, err := r.pool.Query(ctx, query, business, inventoryType)
	if err != nil {
		return nil, fmt.Errorf("report.AssetStatuses: %w", err)
	}
	defer rows.Close()

	var results []*repository.AssetStatusRow
	for rows.Next() {
		var row repository.AssetStatusRow
		if err := rows.Scan(&row.AssetID, &row.AssetName, &row.AssetType, &row.Status, &row.Quantity, &row.AssetQuantity); err != nil {
			return nil, fmt.Errorf("report.AssetStatuses scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// AssetAcquisitions detalle literal por lote; from/to en nil = sin ventana.
func (r *ReportRepo) AssetAcquisitions(ctx context.Context, business, inventoryType string, from, to *time.Time) ([]*repository.AssetAcquisitionRow, error) {
	query := `
	SELECT a.id, a.name, a.type, l.acquisition_date, l.acquisition_cost, l.delivery_cost, l.quantity, l.shop_link
	FROM assets a
	JOIN acquisition_lots l ON l.asset_id = a.id
	WHERE a.business = $1 AND a.inventory_type = $2`
	args := []any{business, inventoryType}
	if from != nil && to != nil {
		args = append(args, *from, *to)
		query += fmt.Sprintf(" AND l.acquisition_date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	query += " ORDER BY a.name ASC, l.acquisition_date DESC, l.id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.AssetAcquisitions: %w", err)
	}
	defer rows.Close()

	var results []*repository.AssetAcquisitionRow
	for rows.Next() {
		var row repository.AssetAcquisitionRow
		if err := rows.Scan(&row.AssetID, &row.AssetName, &row.AssetType, &row.AcquisitionDate,
			&row.AcquisitionCost, &row.DeliveryCost, &row.Quantity, &row.ShopLink); err != nil {
			return nil, fmt.Errorf("report.AssetAcquisitions scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// AssetsSummary agrupa activos por nombre/tipo/estado con cantidad total.
func (r *ReportRepo) AssetsSummary(ctx context.Context, business, inventoryType string) ([]*repository.AssetSummaryRow, error) {
	const query = `
	SELECT MIN(picture_path) AS picture_path, name, type, status, SUM(quantity) AS total_quantity
	FROM assets
	WHERE business = $1 AND inventory_type = $2
	GROUP BY name, type, status
	ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, business, inventoryType)
	if err != nil {
		return nil, fmt.Errorf("report.AssetsSummary: %w", err)
	}
	defer rows.Close()

	var results []*repository.AssetSummaryRow
	for rows.Next() {
		var row repository.AssetSummaryRow
		if err := rows.Scan(&row.PicturePath, &row.Name, &row.Type, &row.Status, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("report.AssetsSummary scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}
