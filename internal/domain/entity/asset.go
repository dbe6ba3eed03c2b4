package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un activo fijo (enumeración fija para StatusAllocation).
var AssetStatuses = []string{"Working", "For Repair", "Damaged", "Missing", "Disposed"}

// IsValidAssetStatus indica si el estado pertenece a la enumeración fija.
func IsValidAssetStatus(status string) bool {
	for _, s := range AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Asset representa un activo fijo. Quantity es la cantidad declarada total;
// los desgloses por estado y por adquisición son particiones parciales e
// independientes de esa cantidad.
type Asset struct {
	ID             string
	PicturePath    string
	Name           string
	Brand          string
	Model          string
	Specifications string
	SeriesNumber   string
	Quantity       decimal.Decimal
	Location       string
	Status         string // etiqueta informativa en la ficha; el desglose real vive en StatusAllocation
	Business       string
	Type           string
	InventoryType  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatusAllocation es una partición parcial de la cantidad de un activo
// contra un estado. Invariante: Σ(asignaciones.Quantity) ≤ asset.Quantity.
type StatusAllocation struct {
	ID       string
	AssetID  string
	Status   string
	Quantity decimal.Decimal
}

// AcquisitionLot es una partición parcial de la cantidad de un activo contra
// un registro de compra. AcquisitionCost es costo POR UNIDAD, no por lote.
// Invariante propio (independiente del de estados): Σ(lotes.Quantity) ≤ asset.Quantity.
type AcquisitionLot struct {
	ID              string
	AssetID         string
	AcquisitionDate time.Time
	AcquisitionCost decimal.Decimal
	DeliveryCost    *decimal.Decimal // opcional, también por unidad
	Quantity        decimal.Decimal
	ShopLink        string // opcional
}

// AcquisitionTotals agrega los lotes de adquisición de un activo.
// Siempre se recalcula en lectura, nunca se almacena.
type AcquisitionTotals struct {
	TotalSpent decimal.Decimal // Σ acquisition_cost × quantity
	TotalQty   decimal.Decimal
	LatestDate *time.Time
}
