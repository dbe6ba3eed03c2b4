package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filas tabulares de reportes. El orden lo fija cada consulta; el render
// (hoja de cálculo, PDF) pertenece a la capa de exportación excluida.

// PerishableMovementRow totales IN/OUT de un producto dentro de una ventana.
type PerishableMovementRow struct {
	ProductID string
	Name      string
	Category  string
	Unit      string
	InQty     decimal.Decimal
	OutQty    decimal.Decimal
}

// ExpiryLotRow detalle literal de un lote para el reporte de vencimientos.
type ExpiryLotRow struct {
	LotID        string
	ProductID    string
	ProductName  string
	DeliveryDate time.Time
	ExpiryDate   *time.Time
	Quantity     decimal.Decimal
}

// DeliveryLogRow entrada IN literal para el reporte de logs.
type DeliveryLogRow struct {
	ProductID    string
	ProductName  string
	DeliveryDate time.Time
	Quantity     decimal.Decimal
}

// WithdrawalLogRow salida OUT literal para el reporte de logs.
type WithdrawalLogRow struct {
	ProductID   string
	ProductName string
	OutDate     time.Time
	OutTime     string
	Quantity    decimal.Decimal
}

// AssetStatusRow una asignación de estado junto con la cantidad declarada del
// activo (para calcular la participación porcentual en lectura).
type AssetStatusRow struct {
	AssetID       string
	AssetName     string
	AssetType     string
	Status        string
	Quantity      decimal.Decimal
	AssetQuantity decimal.Decimal
}

// AssetAcquisitionRow un lote de adquisición literal con su activo.
type AssetAcquisitionRow struct {
	AssetID         string
	AssetName       string
	AssetType       string
	AcquisitionDate time.Time
	AcquisitionCost decimal.Decimal
	DeliveryCost    *decimal.Decimal
	Quantity        decimal.Decimal
	ShopLink        string
}

// AssetSummaryRow agrupación de activos por nombre/tipo/estado.
type AssetSummaryRow struct {
	PicturePath   string
	Name          string
	Type          string
	Status        string
	TotalQuantity decimal.Decimal
}

// ReportRepository define las consultas de solo lectura para reportes (DIP).
// from/to en nil = sin ventana. Ninguna cifra se materializa.
type ReportRepository interface {
	PerishableMovement(ctx context.Context, business string, from, to time.Time) ([]*PerishableMovementRow, error)
	ExpiryLots(ctx context.Context, business string, from, to *time.Time) ([]*ExpiryLotRow, error)
	DeliveryLog(ctx context.Context, business string, from, to *time.Time) ([]*DeliveryLogRow, error)
	WithdrawalLog(ctx context.Context, business string, from, to *time.Time) ([]*WithdrawalLogRow, error)
	AssetStatuses(ctx context.Context, business, inventoryType string) ([]*AssetStatusRow, error)
	AssetAcquisitions(ctx context.Context, business, inventoryType string, from, to *time.Time) ([]*AssetAcquisitionRow, error)
	AssetsSummary(ctx context.Context, business, inventoryType string) ([]*AssetSummaryRow, error)
}
