package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/report"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	movements    []*repository.PerishableMovementRow
	lots         []*repository.ExpiryLotRow
	statuses     []*repository.AssetStatusRow
	acquisitions []*repository.AssetAcquisitionRow
}

func (f *fakeReportRepo) PerishableMovement(_ context.Context, _ string, _, _ time.Time) ([]*repository.PerishableMovementRow, error) {
	return f.movements, nil
}
func (f *fakeReportRepo) ExpiryLots(_ context.Context, _ string, _, _ *time.Time) ([]*repository.ExpiryLotRow, error) {
	return f.lots, nil
}
func (f *fakeReportRepo) DeliveryLog(_ context.Context, _ string, _, _ *time.Time) ([]*repository.DeliveryLogRow, error) {
	return nil, nil
}
func (f *fakeReportRepo) WithdrawalLog(_ context.Context, _ string, _, _ *time.Time) ([]*repository.WithdrawalLogRow, error) {
	return nil, nil
}
func (f *fakeReportRepo) AssetStatuses(_ context.Context, _, _ string) ([]*repository.AssetStatusRow, error) {
	return f.statuses, nil
}
func (f *fakeReportRepo) AssetAcquisitions(_ context.Context, _, _ string, _, _ *time.Time) ([]*repository.AssetAcquisitionRow, error) {
	return f.acquisitions, nil
}
func (f *fakeReportRepo) AssetsSummary(_ context.Context, _, _ string) ([]*repository.AssetSummaryRow, error) {
	return nil, nil
}

type fakeStockRepo struct {
	summaries []*entity.StockSummary
}

func (f *fakeStockRepo) Summary(_ context.Context, _ string, _ time.Time) (*entity.StockSummary, error) {
	return nil, nil
}
func (f *fakeStockRepo) ListByBusiness(_ context.Context, _, _, _ string, _ time.Time) ([]*entity.StockSummary, error) {
	return f.summaries, nil
}
func (f *fakeStockRepo) PeriodTotals(_ context.Context, _ string, _, _ time.Time) (*repository.PeriodTotals, error) {
	return &repository.PeriodTotals{}, nil
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var scope = dto.Scope{Businesses: []string{"restaurant"}}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Los totales IN/OUT vienen de la ventana, pero el saldo se toma de la
// historia completa del producto.
func TestPerishableMovement_SaldoDeHistoriaCompleta(t *testing.T) {
	reportRepo := &fakeReportRepo{movements: []*repository.PerishableMovementRow{
		{ProductID: "p-1", Name: "Tomate", InQty: qty("3"), OutQty: qty("1")},
	}}
	stockRepo := &fakeStockRepo{summaries: []*entity.StockSummary{
		{Product: &entity.Product{ID: "p-1"}, Ending: qty("17")},
	}}
	uc := report.NewAggregatorUseCase(reportRepo, stockRepo)

	rows, err := uc.PerishableMovement(context.Background(), scope, "restaurant", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].InTotal.Equal(qty("3")), "in de la ventana")
	assert.True(t, rows[0].Ending.Equal(qty("17")), "saldo de toda la historia")
}

// La ventana del reporte de movimientos es obligatoria y ordenada.
func TestPerishableMovement_VentanaObligatoria(t *testing.T) {
	uc := report.NewAggregatorUseCase(&fakeReportRepo{}, &fakeStockRepo{})

	_, err := uc.PerishableMovement(context.Background(), scope, "restaurant", "", "2026-08-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PerishableMovement(context.Background(), scope, "restaurant", "2026-08-31", "2026-08-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La participación porcentual es cantidad del estado sobre cantidad declarada × 100.
func TestAssetStatusBreakdown_Porcentaje(t *testing.T) {
	reportRepo := &fakeReportRepo{statuses: []*repository.AssetStatusRow{
		{AssetName: "Freidora", Status: "Working", Quantity: qty("6"), AssetQuantity: qty("8")},
		{AssetName: "Freidora", Status: "Damaged", Quantity: qty("2"), AssetQuantity: qty("8")},
		{AssetName: "Mesa", Status: "Working", Quantity: qty("1"), AssetQuantity: decimal.Zero},
	}}
	uc := report.NewAggregatorUseCase(reportRepo, &fakeStockRepo{})

	rows, err := uc.AssetStatusBreakdown(context.Background(), scope, "restaurant", "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Percentage.Equal(qty("75")), "6/8 × 100")
	assert.True(t, rows[1].Percentage.Equal(qty("25")))
	assert.True(t, rows[2].Percentage.IsZero(), "cantidad declarada cero no divide")
}

// El reporte de adquisiciones acumula gasto = costo unitario × cantidad.
func TestAssetAcquisitions_Totales(t *testing.T) {
	reportRepo := &fakeReportRepo{acquisitions: []*repository.AssetAcquisitionRow{
		{AssetName: "Freidora", AcquisitionDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), AcquisitionCost: qty("100"), Quantity: qty("4")},
		{AssetName: "Mesa", AcquisitionDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), AcquisitionCost: qty("50"), Quantity: qty("2")},
	}}
	uc := report.NewAggregatorUseCase(reportRepo, &fakeStockRepo{})

	got, err := uc.AssetAcquisitions(context.Background(), scope, "restaurant", "", "", "")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.True(t, got.Rows[0].LineTotal.Equal(qty("400")))
	assert.True(t, got.TotalSpent.Equal(qty("500")), "100×4 + 50×2")
	assert.True(t, got.TotalQty.Equal(qty("6")))
}

// Los lotes del reporte llevan la clasificación de detalle del momento de la consulta.
func TestExpiryLots_Clasificados(t *testing.T) {
	vencido := time.Now().AddDate(0, 0, -1)
	critico := time.Now().AddDate(0, 0, 2)
	reportRepo := &fakeReportRepo{lots: []*repository.ExpiryLotRow{
		{ProductName: "Tomate", DeliveryDate: time.Now(), ExpiryDate: &vencido, Quantity: qty("2")},
		{ProductName: "Queso", DeliveryDate: time.Now(), ExpiryDate: &critico, Quantity: qty("3")},
		{ProductName: "Arroz", DeliveryDate: time.Now(), Quantity: qty("9")},
	}}
	uc := report.NewAggregatorUseCase(reportRepo, &fakeStockRepo{})

	rows, err := uc.ExpiryLots(context.Background(), scope, "restaurant", "", "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Expired", rows[0].Status)
	assert.Equal(t, "D-2", rows[1].Status)
	assert.Equal(t, "critical", rows[1].Tier)
	assert.Empty(t, rows[2].Status, "sin fecha no hay estado")
}

// Los reportes respetan el ámbito de negocios del token.
func TestReportes_FueraDeAmbito(t *testing.T) {
	uc := report.NewAggregatorUseCase(&fakeReportRepo{}, &fakeStockRepo{})
	otro := dto.Scope{Businesses: []string{"minimarket"}}

	_, err := uc.AssetsSummary(context.Background(), otro, "restaurant", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
