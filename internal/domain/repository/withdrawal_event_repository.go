package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// WithdrawalEventRepository define el puerto de persistencia para eventos OUT (DIP).
type WithdrawalEventRepository interface {
	Create(ctx context.Context, event *entity.WithdrawalEvent) error
	GetByID(ctx context.Context, id string) (*entity.WithdrawalEvent, error)
	Update(ctx context.Context, event *entity.WithdrawalEvent) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.WithdrawalEvent, error)
	Delete(ctx context.Context, id string) error
}
