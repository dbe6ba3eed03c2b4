package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.DeliveryEventRepository = (*DeliveryEventRepo)(nil)

// DeliveryEventRepo implementación de DeliveryEventRepository sobre PostgreSQL (usable con pool o tx).
type DeliveryEventRepo struct {
	q Querier
}

// NewDeliveryEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryEventRepository(q Querier) *DeliveryEventRepo {
	return &DeliveryEventRepo{q: q}
}

const deliveryEventColumns = `id, product_id, delivery_date, quantity, created_at`

// Create persiste un evento IN (append-only).
func (r *DeliveryEventRepo) Create(ctx context.Context, event *entity.DeliveryEvent) error {
	query := `
		INSERT INTO delivery_events (id, product_id, delivery_date, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ProductID, event.DeliveryDate, event.Quantity, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento IN por ID. Devuelve nil si no existe.
func (r *DeliveryEventRepo) GetByID(ctx context.Context, id string) (*entity.DeliveryEvent, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene el evento bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: sostiene el invariante de
// conservación de los lotes frente a escritores concurrentes.
func (r *DeliveryEventRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.DeliveryEvent, error) {
	return r.get(ctx, id, true)
}

func (r *DeliveryEventRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.DeliveryEvent, error) {
	query := `SELECT ` + deliveryEventColumns + ` FROM delivery_events WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var e entity.DeliveryEvent
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProductID, &e.DeliveryDate, &e.Quantity, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery event: %w", err)
	}
	return &e, nil
}

// Update modifica fecha y cantidad de un evento IN.
func (r *DeliveryEventRepo) Update(ctx context.Context, event *entity.DeliveryEvent) error {
	query := `UPDATE delivery_events SET delivery_date = $2, quantity = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, event.ID, event.DeliveryDate, event.Quantity)
	if err != nil {
		return fmt.Errorf("update delivery event: %w", err)
	}
	return nil
}

// ListByProduct lista los eventos IN de un producto, más recientes primero.
func (r *DeliveryEventRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.DeliveryEvent, error) {
	query := `SELECT ` + deliveryEventColumns + ` FROM delivery_events WHERE product_id = $1 ORDER BY delivery_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list delivery events: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryEvent
	for rows.Next() {
		var e entity.DeliveryEvent
		if err := rows.Scan(&e.ID, &e.ProductID, &e.DeliveryDate, &e.Quantity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un evento IN; la cascada del esquema elimina sus lotes.
func (r *DeliveryEventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM delivery_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete delivery event: %w", err)
	}
	return nil
}
