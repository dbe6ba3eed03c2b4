package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpiryLot es una sub-asignación de cantidad de un DeliveryEvent a una fecha
// de vencimiento concreta (o a ninguna: un lote sin fecha nunca genera alertas).
// Invariante: para un evento dado, Σ(lotes.Quantity) ≤ evento.Quantity.
type ExpiryLot struct {
	ID              string
	DeliveryEventID string
	ExpiryDate      *time.Time // nil = sin clasificar
	Quantity        decimal.Decimal
}
