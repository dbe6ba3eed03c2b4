package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo consultas de stock derivado sobre PostgreSQL. Las cifras se
// calculan siempre en la consulta, nunca se materializan: no pueden divergir
// de los eventos que las originan.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock derivado. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Subconsultas de stock por producto: totales IN/OUT, próxima fecha de
// vencimiento clasificada y cantidades por vencer en ≤3 y ≤7 días desde today.
const stockSummarySelect = `
	SELECT
		p.id, p.name, p.category, p.unit, p.opening_stock, p.low_stock_level,
		p.photo_path, p.business, p.created_at, p.updated_at,
		COALESCE((SELECT SUM(quantity) FROM delivery_events i WHERE i.product_id = p.id), 0) AS in_qty,
		COALESCE((SELECT SUM(quantity) FROM withdrawal_events o WHERE o.product_id = p.id), 0) AS out_qty,
		(
			SELECT MIN(l.expiry_date)
			FROM expiry_lots l
			JOIN delivery_events i ON i.id = l.delivery_event_id
			WHERE i.product_id = p.id AND l.expiry_date IS NOT NULL
		) AS next_expiry,
		COALESCE((
			SELECT SUM(l.quantity)
			FROM expiry_lots l
			JOIN delivery_events i ON i.id = l.delivery_event_id
			WHERE i.product_id = p.id AND l.expiry_date IS NOT NULL AND l.expiry_date <= $1::date + 3
		), 0) AS expiring_3_qty,
		COALESCE((
			SELECT SUM(l.quantity)
			FROM expiry_lots l
			JOIN delivery_events i ON i.id = l.delivery_event_id
			WHERE i.product_id = p.id AND l.expiry_date IS NOT NULL AND l.expiry_date <= $1::date + 7
		), 0) AS expiring_7_qty
	FROM products p`

// Summary devuelve las cifras derivadas de un producto sobre la historia completa.
// Devuelve nil si el producto no existe.
func (r *StockRepo) Summary(ctx context.Context, productID string, today time.Time) (*entity.StockSummary, error) {
	query := stockSummarySelect + ` WHERE p.id = $2`
	rows, err := r.q.Query(ctx, query, today, productID)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	defer rows.Close()
	list, err := scanStockSummaries(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListByBusiness devuelve una fila de stock por producto del negocio; search y
// category filtran igual que el listado de productos (vacío = sin filtro).
func (r *StockRepo) ListByBusiness(ctx context.Context, business, search, category string, today time.Time) ([]*entity.StockSummary, error) {
	query := stockSummarySelect + ` WHERE p.business = $2`
	args := []any{today, business}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.id::TEXT ILIKE $%d OR p.name ILIKE $%d OR p.category ILIKE $%d OR p.unit ILIKE $%d)", n, n, n, n)
	}
	if category != "" {
		args = append(args, "%"+category+"%")
		query += fmt.Sprintf(" AND p.category ILIKE $%d", len(args))
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock list: %w", err)
	}
	defer rows.Close()
	return scanStockSummaries(rows)
}

// PeriodTotals restringe los totales IN/OUT a la ventana [from, to]; el saldo
// final no se restringe nunca (lo calcula el caso de uso con Summary).
func (r *StockRepo) PeriodTotals(ctx context.Context, productID string, from, to time.Time) (*repository.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(quantity) FROM delivery_events WHERE product_id = $1 AND delivery_date BETWEEN $2 AND $3), 0),
			COALESCE((SELECT SUM(quantity) FROM withdrawal_events WHERE product_id = $1 AND out_date BETWEEN $2 AND $3), 0)`
	var t repository.PeriodTotals
	if err := r.q.QueryRow(ctx, query, productID, from, to).Scan(&t.InTotal, &t.OutTotal); err != nil {
		return nil, fmt.Errorf("stock period totals: %w", err)
	}
	return &t, nil
}

func scanStockSummaries(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*entity.StockSummary, error) {
	var list []*entity.StockSummary
	for rows.Next() {
		var p entity.Product
		var s entity.StockSummary
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Unit, &p.OpeningStock, &p.LowStockLevel,
			&p.PhotoPath, &p.Business, &p.CreatedAt, &p.UpdatedAt,
			&s.InTotal, &s.OutTotal, &s.NextExpiry, &s.Expiring3Qty, &s.Expiring7Qty,
		); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		s.Product = &p
		s.Ending = p.OpeningStock.Add(s.InTotal).Sub(s.OutTotal)
		list = append(list, &s)
	}
	return list, rows.Err()
}
