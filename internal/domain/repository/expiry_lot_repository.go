package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ExpiryLotRepository define el puerto de persistencia para lotes de vencimiento (DIP).
// SumByEvent suma las cantidades ya asignadas a un evento IN; se usa dentro de
// la misma transacción que bloquea el evento para el chequeo de conservación.
type ExpiryLotRepository interface {
	Create(ctx context.Context, lot *entity.ExpiryLot) error
	GetByID(ctx context.Context, id string) (*entity.ExpiryLot, error)
	ListByEvent(ctx context.Context, deliveryEventID string) ([]*entity.ExpiryLot, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.ExpiryLot, error)
	SumByEvent(ctx context.Context, deliveryEventID string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}
