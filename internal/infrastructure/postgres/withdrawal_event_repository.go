package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.WithdrawalEventRepository = (*WithdrawalEventRepo)(nil)

// WithdrawalEventRepo implementación de WithdrawalEventRepository sobre PostgreSQL (usable con pool o tx).
type WithdrawalEventRepo struct {
	q Querier
}

// NewWithdrawalEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalEventRepository(q Querier) *WithdrawalEventRepo {
	return &WithdrawalEventRepo{q: q}
}

// Create persiste un evento OUT (append-only, sin chequeo de disponibilidad).
func (r *WithdrawalEventRepo) Create(ctx context.Context, event *entity.WithdrawalEvent) error {
	query := `
		INSERT INTO withdrawal_events (id, product_id, out_date, out_time, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ProductID, event.OutDate, event.OutTime, event.Quantity, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento OUT por ID. Devuelve nil si no existe.
func (r *WithdrawalEventRepo) GetByID(ctx context.Context, id string) (*entity.WithdrawalEvent, error) {
	query := `SELECT id, product_id, out_date, out_time, quantity, created_at FROM withdrawal_events WHERE id = $1`
	var e entity.WithdrawalEvent
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProductID, &e.OutDate, &e.OutTime, &e.Quantity, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal event: %w", err)
	}
	return &e, nil
}

// Update modifica fecha, hora y cantidad de un evento OUT.
func (r *WithdrawalEventRepo) Update(ctx context.Context, event *entity.WithdrawalEvent) error {
	query := `UPDATE withdrawal_events SET out_date = $2, out_time = $3, quantity = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, event.ID, event.OutDate, event.OutTime, event.Quantity)
	if err != nil {
		return fmt.Errorf("update withdrawal event: %w", err)
	}
	return nil
}

// ListByProduct lista los eventos OUT de un producto, más recientes primero.
func (r *WithdrawalEventRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.WithdrawalEvent, error) {
	query := `SELECT id, product_id, out_date, out_time, quantity, created_at FROM withdrawal_events WHERE product_id = $1 ORDER BY out_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal events: %w", err)
	}
	defer rows.Close()
	var list []*entity.WithdrawalEvent
	for rows.Next() {
		var e entity.WithdrawalEvent
		if err := rows.Scan(&e.ID, &e.ProductID, &e.OutDate, &e.OutTime, &e.Quantity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un evento OUT por ID.
func (r *WithdrawalEventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM withdrawal_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete withdrawal event: %w", err)
	}
	return nil
}
