package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest entrada para crear un activo fijo.
type CreateAssetRequest struct {
	PicturePath    string          `json:"picture_path"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Specifications string          `json:"specifications"`
	SeriesNumber   string          `json:"series_number"`
	Quantity       decimal.Decimal `json:"quantity"`
	Location       string          `json:"location"`
	Status         string          `json:"status"`
	Business       string          `json:"business"`
	Type           string          `json:"type"`
	InventoryType  string          `json:"inventory_type"`
}

// UpdateAssetRequest entrada para editar un activo (campos opcionales).
// Bajar quantity no revalida los desgloses existentes.
type UpdateAssetRequest struct {
	PicturePath    *string          `json:"picture_path"`
	Name           *string          `json:"name"`
	Brand          *string          `json:"brand"`
	Model          *string          `json:"model"`
	Specifications *string          `json:"specifications"`
	SeriesNumber   *string          `json:"series_number"`
	Quantity       *decimal.Decimal `json:"quantity"`
	Location       *string          `json:"location"`
	Status         *string          `json:"status"`
	Type           *string          `json:"type"`
}

// AssetResponse salida de activo con agregados de adquisición derivados.
type AssetResponse struct {
	ID                    string           `json:"id"`
	PicturePath           string           `json:"picture_path,omitempty"`
	Name                  string           `json:"name"`
	Brand                 string           `json:"brand,omitempty"`
	Model                 string           `json:"model,omitempty"`
	Specifications        string           `json:"specifications,omitempty"`
	SeriesNumber          string           `json:"series_number,omitempty"`
	Quantity              decimal.Decimal  `json:"quantity"`
	Location              string           `json:"location,omitempty"`
	Status                string           `json:"status,omitempty"`
	Business              string           `json:"business"`
	Type                  string           `json:"type"`
	InventoryType         string           `json:"inventory_type"`
	TotalSpent            *decimal.Decimal `json:"total_spent,omitempty"`
	TotalAcquiredQty      *decimal.Decimal `json:"total_acquired_qty,omitempty"`
	LatestAcquisitionDate string           `json:"latest_acquisition_date,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// AddStatusAllocationRequest entrada para asignar cantidad a un estado.
type AddStatusAllocationRequest struct {
	Status   string          `json:"status"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StatusAllocationResponse salida de una asignación de estado.
type StatusAllocationResponse struct {
	ID       string          `json:"id"`
	AssetID  string          `json:"asset_id"`
	Status   string          `json:"status"`
	Quantity decimal.Decimal `json:"quantity"`
}

// AddAcquisitionLotRequest entrada para registrar un lote de adquisición.
// acquisition_cost y delivery_cost son POR UNIDAD.
type AddAcquisitionLotRequest struct {
	AcquisitionDate string           `json:"acquisition_date"` // YYYY-MM-DD
	AcquisitionCost decimal.Decimal  `json:"acquisition_cost"`
	DeliveryCost    *decimal.Decimal `json:"delivery_cost"`
	Quantity        decimal.Decimal  `json:"quantity"`
	ShopLink        string           `json:"shop_link"`
}

// AcquisitionLotResponse salida de un lote de adquisición.
type AcquisitionLotResponse struct {
	ID              string           `json:"id"`
	AssetID         string           `json:"asset_id"`
	AcquisitionDate string           `json:"acquisition_date"`
	AcquisitionCost decimal.Decimal  `json:"acquisition_cost"`
	DeliveryCost    *decimal.Decimal `json:"delivery_cost,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	ShopLink        string           `json:"shop_link,omitempty"`
}

// AcquisitionTotalsResponse agregados derivados de los lotes de un activo.
type AcquisitionTotalsResponse struct {
	AssetID               string          `json:"asset_id"`
	TotalSpent            decimal.Decimal `json:"total_spent"`
	TotalAcquiredQty      decimal.Decimal `json:"total_acquired_qty"`
	LatestAcquisitionDate string          `json:"latest_acquisition_date,omitempty"`
}
