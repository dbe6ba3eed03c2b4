package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// StatusAllocationRepository define el puerto de persistencia para el desglose
// por estado de un activo (DIP). SumByAsset suma las cantidades asignadas;
// excludeID permite revalidar una edición sin contar la fila que se modifica
// (pasar "" para no excluir ninguna).
type StatusAllocationRepository interface {
	Create(ctx context.Context, alloc *entity.StatusAllocation) error
	GetByID(ctx context.Context, id string) (*entity.StatusAllocation, error)
	Update(ctx context.Context, alloc *entity.StatusAllocation) error
	ListByAsset(ctx context.Context, assetID string) ([]*entity.StatusAllocation, error)
	SumByAsset(ctx context.Context, assetID, excludeID string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}
