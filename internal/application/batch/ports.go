package batch

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de conservación
// de los lotes (bloquear evento, sumar, comparar, insertar) sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.DeliveryEventRepository,
		lotRepo repository.ExpiryLotRepository,
	) error) error
}
