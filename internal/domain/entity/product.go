package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto perecedero de un negocio.
// El stock nunca se almacena: se deriva de los eventos IN/OUT más OpeningStock.
type Product struct {
	ID            string
	Name          string
	Category      string
	Unit          string // etiqueta de unidad (kg, tray, unit, ...)
	OpeningStock  decimal.Decimal
	LowStockLevel decimal.Decimal
	PhotoPath     string // opcional, referencia para la capa de presentación
	Business      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
