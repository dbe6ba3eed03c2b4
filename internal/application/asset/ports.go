package asset

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de activos atados a esa tx. Cada desglose revalida su propio
// invariante de conservación con la fila del activo bloqueada; la duplicación
// profunda también corre aquí para ser todo-o-nada.
type TxRunner interface {
	RunAsset(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		statusRepo repository.StatusAllocationRepository,
		acqRepo repository.AcquisitionLotRepository,
	) error) error
}
