package dto

import (
	"github.com/shopspring/decimal"
)

// RecordDeliveryRequest entrada para registrar un evento IN.
type RecordDeliveryRequest struct {
	ProductID    string          `json:"product_id"`
	DeliveryDate string          `json:"delivery_date"` // YYYY-MM-DD
	Quantity     decimal.Decimal `json:"quantity"`
}

// UpdateDeliveryRequest entrada para editar un evento IN.
type UpdateDeliveryRequest struct {
	DeliveryDate string          `json:"delivery_date"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// RecordWithdrawalRequest entrada para registrar un evento OUT.
type RecordWithdrawalRequest struct {
	ProductID string          `json:"product_id"`
	OutDate   string          `json:"out_date"` // YYYY-MM-DD
	OutTime   string          `json:"out_time"` // texto libre
	Quantity  decimal.Decimal `json:"quantity"`
}

// UpdateWithdrawalRequest entrada para editar un evento OUT.
type UpdateWithdrawalRequest struct {
	OutDate  string          `json:"out_date"`
	OutTime  string          `json:"out_time"`
	Quantity decimal.Decimal `json:"quantity"`
}

// DeliveryEventResponse salida de un evento IN.
type DeliveryEventResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	DeliveryDate string          `json:"delivery_date"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// WithdrawalEventResponse salida de un evento OUT.
type WithdrawalEventResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	OutDate   string          `json:"out_date"`
	OutTime   string          `json:"out_time"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StockFigures cifras derivadas de stock de un producto. Cuando hay ventana,
// in_total/out_total se restringen a ella pero ending conserva la historia completa.
type StockFigures struct {
	ProductID    string          `json:"product_id"`
	Opening      decimal.Decimal `json:"opening"`
	InTotal      decimal.Decimal `json:"in_total"`
	OutTotal     decimal.Decimal `json:"out_total"`
	Ending       decimal.Decimal `json:"ending"`
	NextExpiry   string          `json:"next_expiry,omitempty"`
	Expiring3Qty decimal.Decimal `json:"expiring_3_qty"`
	Expiring7Qty decimal.Decimal `json:"expiring_7_qty"`
}

// StockRow fila del listado de stock por producto con clasificación resumen.
type StockRow struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Opening      decimal.Decimal `json:"opening"`
	InTotal      decimal.Decimal `json:"in_total"`
	OutTotal     decimal.Decimal `json:"out_total"`
	Ending       decimal.Decimal `json:"ending"`
	LowStock     bool            `json:"low_stock"`
	ExpiryLabel  string          `json:"expiry_label,omitempty"`
	ExpiryTier   string          `json:"expiry_tier,omitempty"`
	Expiring3Qty decimal.Decimal `json:"expiring_3_qty"`
	Expiring7Qty decimal.Decimal `json:"expiring_7_qty"`
}

// AddLotRequest entrada para asignar un lote de vencimiento a un evento IN.
type AddLotRequest struct {
	ExpiryDate string          `json:"expiry_date"` // YYYY-MM-DD, vacío = sin clasificar
	Quantity   decimal.Decimal `json:"quantity"`
}

// LotResponse salida de un lote con su clasificación de detalle.
type LotResponse struct {
	ID              string          `json:"id"`
	DeliveryEventID string          `json:"delivery_event_id"`
	ExpiryDate      string          `json:"expiry_date,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Status          string          `json:"status,omitempty"` // Expired, D-n o fecha literal
	Tier            string          `json:"tier,omitempty"`
}
