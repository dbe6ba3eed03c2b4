package dto

import "github.com/shopspring/decimal"

// ReportWindowRequest filtro de rango de fechas opcional para reportes.
type ReportWindowRequest struct {
	From string `json:"from" query:"from"` // YYYY-MM-DD, vacío = sin límite
	To   string `json:"to" query:"to"`
}

// PerishableMovementRow fila del reporte de movimientos: totales IN/OUT de la
// ventana más el saldo final de historia completa.
type PerishableMovementRow struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	InTotal     decimal.Decimal `json:"in_total"`
	OutTotal    decimal.Decimal `json:"out_total"`
	Ending      decimal.Decimal `json:"ending"`
}

// ExpiryLotReportRow fila del reporte de lotes por vencimiento, con la
// clasificación de detalle calculada al momento de la consulta.
type ExpiryLotReportRow struct {
	ProductName  string          `json:"product_name"`
	DeliveryDate string          `json:"delivery_date"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Status       string          `json:"status"`
	Tier         string          `json:"tier,omitempty"`
}

// DeliveryLogReportRow fila del historial de entregas.
type DeliveryLogReportRow struct {
	ProductName  string          `json:"product_name"`
	DeliveryDate string          `json:"delivery_date"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// WithdrawalLogReportRow fila del historial de salidas.
type WithdrawalLogReportRow struct {
	ProductName string          `json:"product_name"`
	OutDate     string          `json:"out_date"`
	OutTime     string          `json:"out_time,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// AssetStatusReportRow fila del reporte de estados de activos con la
// participación porcentual sobre la cantidad declarada del activo.
type AssetStatusReportRow struct {
	AssetName  string          `json:"asset_name"`
	AssetType  string          `json:"asset_type,omitempty"`
	Status     string          `json:"status"`
	Quantity   decimal.Decimal `json:"quantity"`
	Percentage decimal.Decimal `json:"percentage"`
}

// AssetAcquisitionReportRow fila del reporte de adquisiciones; LineTotal es
// costo unitario × cantidad (el costo de envío se muestra aparte).
type AssetAcquisitionReportRow struct {
	AssetName       string           `json:"asset_name"`
	AssetType       string           `json:"asset_type,omitempty"`
	AcquisitionDate string           `json:"acquisition_date"`
	AcquisitionCost decimal.Decimal  `json:"acquisition_cost"`
	DeliveryCost    *decimal.Decimal `json:"delivery_cost,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	LineTotal       decimal.Decimal  `json:"line_total"`
	ShopLink        string           `json:"shop_link,omitempty"`
}

// AssetAcquisitionReport reporte de adquisiciones con totales del rango.
type AssetAcquisitionReport struct {
	Rows       []AssetAcquisitionReportRow `json:"rows"`
	TotalSpent decimal.Decimal             `json:"total_spent"`
	TotalQty   decimal.Decimal             `json:"total_qty"`
}

// AssetSummaryReportRow fila del resumen de activos agrupados.
type AssetSummaryReportRow struct {
	PicturePath string          `json:"picture_path,omitempty"`
	Name        string          `json:"name"`
	Type        string          `json:"type,omitempty"`
	Status      string          `json:"status,omitempty"`
	TotalQty    decimal.Decimal `json:"total_qty"`
}
