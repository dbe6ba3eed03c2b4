package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// DeliveryEventRepository define el puerto de persistencia para eventos IN (DIP).
// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) para el chequeo de
// conservación de los lotes; solo tiene sentido dentro de una transacción.
// Delete elimina en cascada los ExpiryLots del evento.
type DeliveryEventRepository interface {
	Create(ctx context.Context, event *entity.DeliveryEvent) error
	GetByID(ctx context.Context, id string) (*entity.DeliveryEvent, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.DeliveryEvent, error)
	Update(ctx context.Context, event *entity.DeliveryEvent) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.DeliveryEvent, error)
	Delete(ctx context.Context, id string) error
}
