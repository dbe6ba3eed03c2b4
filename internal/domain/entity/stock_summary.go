package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSummary son las cifras de stock derivadas de un producto.
// Ending = OpeningStock + InTotal − OutTotal sobre la historia completa;
// cuando hay ventana de reporte, InTotal/OutTotal se restringen a ella pero
// Ending sigue calculándose sobre la historia sin restricciones.
type StockSummary struct {
	Product      *Product
	InTotal      decimal.Decimal
	OutTotal     decimal.Decimal
	Ending       decimal.Decimal
	NextExpiry   *time.Time // mínima fecha de vencimiento con lote clasificado
	Expiring3Qty decimal.Decimal
	Expiring7Qty decimal.Decimal
}

// LowStock indica si el saldo quedó en o por debajo del umbral del producto.
func (s *StockSummary) LowStock() bool {
	return s.Product != nil && s.Ending.LessThanOrEqual(s.Product.LowStockLevel)
}
