package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia para activos fijos (DIP).
// GetByIDForUpdate bloquea la fila para los chequeos de conservación de los
// dos desgloses. Delete elimina en cascada asignaciones de estado y lotes de
// adquisición.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	ListByBusiness(ctx context.Context, business, inventoryType, search, typeFilter string) ([]*AssetListRow, error)
	Delete(ctx context.Context, id string) error
}

// AssetListRow es la fila del listado de activos con agregados de adquisición.
type AssetListRow struct {
	Asset  entity.Asset
	Totals entity.AcquisitionTotals
}
