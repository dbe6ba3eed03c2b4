package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryEvent representa una entrada (IN) de un producto perecedero.
// Es append-only: el stock se deriva sumando estos eventos.
// Puede particionarse en ExpiryLots; la suma de los lotes nunca supera Quantity.
type DeliveryEvent struct {
	ID           string
	ProductID    string
	DeliveryDate time.Time
	Quantity     decimal.Decimal
	CreatedAt    time.Time
}

// WithdrawalEvent representa una salida (OUT) de un producto perecedero.
// No se valida contra el stock disponible: el saldo derivado puede quedar negativo.
type WithdrawalEvent struct {
	ID        string
	ProductID string
	OutDate   time.Time
	OutTime   string // texto libre (hora de la salida)
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
