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

var _ repository.ExpiryLotRepository = (*ExpiryLotRepo)(nil)

// ExpiryLotRepo implementación de ExpiryLotRepository sobre PostgreSQL (usable con pool o tx).
type ExpiryLotRepo struct {
	q Querier
}

// NewExpiryLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpiryLotRepository(q Querier) *ExpiryLotRepo {
	return &ExpiryLotRepo{q: q}
}

// Create persiste un lote de vencimiento. El chequeo de conservación lo hace
// el caso de uso dentro de la misma transacción que bloquea el evento padre.
func (r *ExpiryLotRepo) Create(ctx context.Context, lot *entity.ExpiryLot) error {
	query := `
		INSERT INTO expiry_lots (id, delivery_event_id, expiry_date, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, lot.ID, lot.DeliveryEventID, lot.ExpiryDate, lot.Quantity)
	if err != nil {
		return fmt.Errorf("insert expiry lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve nil si no existe.
func (r *ExpiryLotRepo) GetByID(ctx context.Context, id string) (*entity.ExpiryLot, error) {
	query := `SELECT id, delivery_event_id, expiry_date, quantity FROM expiry_lots WHERE id = $1`
	var l entity.ExpiryLot
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.DeliveryEventID, &l.ExpiryDate, &l.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expiry lot: %w", err)
	}
	return &l, nil
}

// ListByEvent lista los lotes de un evento IN, fechas sin clasificar al final.
func (r *ExpiryLotRepo) ListByEvent(ctx context.Context, deliveryEventID string) ([]*entity.ExpiryLot, error) {
	query := `
		SELECT id, delivery_event_id, expiry_date, quantity
		FROM expiry_lots WHERE delivery_event_id = $1
		ORDER BY expiry_date ASC NULLS LAST`
	return r.list(ctx, query, deliveryEventID)
}

// ListByProduct lista los lotes de todos los eventos IN de un producto.
func (r *ExpiryLotRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ExpiryLot, error) {
	query := `
		SELECT l.id, l.delivery_event_id, l.expiry_date, l.quantity
		FROM expiry_lots l
		JOIN delivery_events e ON e.id = l.delivery_event_id
		WHERE e.product_id = $1
		ORDER BY l.expiry_date ASC NULLS LAST, e.delivery_date DESC`
	return r.list(ctx, query, productID)
}

func (r *ExpiryLotRepo) list(ctx context.Context, query string, arg any) ([]*entity.ExpiryLot, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list expiry lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpiryLot
	for rows.Next() {
		var l entity.ExpiryLot
		if err := rows.Scan(&l.ID, &l.DeliveryEventID, &l.ExpiryDate, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan expiry lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SumByEvent suma las cantidades ya asignadas a lotes de un evento IN.
func (r *ExpiryLotRepo) SumByEvent(ctx context.Context, deliveryEventID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM expiry_lots WHERE delivery_event_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, deliveryEventID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum expiry lots: %w", err)
	}
	return sum, nil
}

// Delete elimina un lote por ID (sin condiciones).
func (r *ExpiryLotRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expiry_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expiry lot: %w", err)
	}
	return nil
}
