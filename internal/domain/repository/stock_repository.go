package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// PeriodTotals son los totales IN/OUT de un producto dentro de una ventana de
// fechas (usados por los reportes de periodo; el saldo final no se restringe).
type PeriodTotals struct {
	InTotal  decimal.Decimal
	OutTotal decimal.Decimal
}

// StockRepository define las consultas derivadas de stock (DIP). Todo se
// calcula en lectura sobre los eventos; nada se materializa.
type StockRepository interface {
	// Summary devuelve las cifras de stock de un producto sobre la historia completa.
	Summary(ctx context.Context, productID string, today time.Time) (*entity.StockSummary, error)
	// ListByBusiness devuelve una fila por producto del negocio, con filtros
	// opcionales de búsqueda y categoría (vacío = sin filtro).
	ListByBusiness(ctx context.Context, business, search, category string, today time.Time) ([]*entity.StockSummary, error)
	// PeriodTotals restringe los totales IN/OUT a la ventana [from, to].
	PeriodTotals(ctx context.Context, productID string, from, to time.Time) (*PeriodTotals, error)
}
