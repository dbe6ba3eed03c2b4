package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	OpeningStock  decimal.Decimal `json:"opening_stock"`
	LowStockLevel decimal.Decimal `json:"low_stock_level"`
	PhotoPath     string          `json:"photo_path"`
	Business      string          `json:"business"`
}

// UpdateProductRequest entrada para editar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	OpeningStock  *decimal.Decimal `json:"opening_stock"`
	LowStockLevel *decimal.Decimal `json:"low_stock_level"`
	PhotoPath     *string          `json:"photo_path"`
}

// ProductResponse salida de producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	OpeningStock  decimal.Decimal `json:"opening_stock"`
	LowStockLevel decimal.Decimal `json:"low_stock_level"`
	PhotoPath     string          `json:"photo_path,omitempty"`
	Business      string          `json:"business"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
