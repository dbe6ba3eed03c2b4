package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// AcquisitionLotRepository define el puerto de persistencia para el desglose
// por adquisición de un activo (DIP). Misma semántica de SumByAsset que el
// desglose por estado; los dos desgloses no interactúan entre sí.
type AcquisitionLotRepository interface {
	Create(ctx context.Context, lot *entity.AcquisitionLot) error
	GetByID(ctx context.Context, id string) (*entity.AcquisitionLot, error)
	Update(ctx context.Context, lot *entity.AcquisitionLot) error
	ListByAsset(ctx context.Context, assetID string) ([]*entity.AcquisitionLot, error)
	SumByAsset(ctx context.Context, assetID, excludeID string) (decimal.Decimal, error)
	TotalsByAsset(ctx context.Context, assetID string) (*entity.AcquisitionTotals, error)
	Delete(ctx context.Context, id string) error
}
