package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/expiry"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// AggregatorUseCase produce los reportes tabulares de solo lectura. Ninguna
// cifra se materializa: todo se recalcula contra los eventos en cada consulta.
type AggregatorUseCase struct {
	reportRepo repository.ReportRepository
	stockRepo  repository.StockRepository
}

// NewAggregatorUseCase construye el caso de uso.
func NewAggregatorUseCase(reportRepo repository.ReportRepository, stockRepo repository.StockRepository) *AggregatorUseCase {
	return &AggregatorUseCase{reportRepo: reportRepo, stockRepo: stockRepo}
}

// PerishableMovement devuelve por producto los totales IN/OUT de la ventana
// junto con el saldo final de historia completa (el saldo nunca se restringe).
func (uc *AggregatorUseCase) PerishableMovement(ctx context.Context, scope dto.Scope, business, from, to string) ([]*dto.PerishableMovementRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	fromDate, err := dto.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := dto.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.reportRepo.PerishableMovement(ctx, business, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	summaries, err := uc.stockRepo.ListByBusiness(ctx, business, "", "", time.Now())
	if err != nil {
		return nil, err
	}
	endings := make(map[string]decimal.Decimal, len(summaries))
	for _, s := range summaries {
		endings[s.Product.ID] = s.Ending
	}

	out := make([]*dto.PerishableMovementRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.PerishableMovementRow{
			ProductID:   r.ProductID,
			ProductName: r.Name,
			Category:    r.Category,
			Unit:        r.Unit,
			InTotal:     r.InQty,
			OutTotal:    r.OutQty,
			Ending:      endings[r.ProductID],
		})
	}
	return out, nil
}

// ExpiryLots lista los lotes del negocio con la clasificación de detalle
// calculada al momento de la consulta.
func (uc *AggregatorUseCase) ExpiryLots(ctx context.Context, scope dto.Scope, business, from, to string) ([]*dto.ExpiryLotReportRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.ExpiryLots(ctx, business, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]*dto.ExpiryLotReportRow, 0, len(rows))
	for _, r := range rows {
		class := expiry.ClassifyDetail(now, r.ExpiryDate)
		out = append(out, &dto.ExpiryLotReportRow{
			ProductName:  r.ProductName,
			DeliveryDate: r.DeliveryDate.Format(dto.DateLayout),
			ExpiryDate:   dto.FormatDate(r.ExpiryDate),
			Quantity:     r.Quantity,
			Status:       class.Label,
			Tier:         string(class.Tier),
		})
	}
	return out, nil
}

// DeliveryLog lista las entregas literales del negocio en la ventana.
func (uc *AggregatorUseCase) DeliveryLog(ctx context.Context, scope dto.Scope, business, from, to string) ([]*dto.DeliveryLogReportRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.DeliveryLog(ctx, business, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryLogReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.DeliveryLogReportRow{
			ProductName:  r.ProductName,
			DeliveryDate: r.DeliveryDate.Format(dto.DateLayout),
			Quantity:     r.Quantity,
		})
	}
	return out, nil
}

// WithdrawalLog lista las salidas literales del negocio en la ventana.
func (uc *AggregatorUseCase) WithdrawalLog(ctx context.Context, scope dto.Scope, business, from, to string) ([]*dto.WithdrawalLogReportRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.WithdrawalLog(ctx, business, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalLogReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.WithdrawalLogReportRow{
			ProductName: r.ProductName,
			OutDate:     r.OutDate.Format(dto.DateLayout),
			OutTime:     r.OutTime,
			Quantity:    r.Quantity,
		})
	}
	return out, nil
}

// AssetStatusBreakdown lista las asignaciones de estado con la participación
// porcentual sobre la cantidad declarada de cada activo.
func (uc *AggregatorUseCase) AssetStatusBreakdown(ctx context.Context, scope dto.Scope, business, inventoryType string) ([]*dto.AssetStatusReportRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.AssetStatuses(ctx, business, inventoryType)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetStatusReportRow, 0, len(rows))
	for _, r := range rows {
		pct := decimal.Zero
		if r.AssetQuantity.GreaterThan(decimal.Zero) {
			pct = r.Quantity.Div(r.AssetQuantity).Mul(hundred)
		}
		out = append(out, &dto.AssetStatusReportRow{
			AssetName:  r.AssetName,
			AssetType:  r.AssetType,
			Status:     r.Status,
			Quantity:   r.Quantity,
			Percentage: pct,
		})
	}
	return out, nil
}

// AssetAcquisitions lista los lotes de adquisición literales y acumula los
// totales de la ventana; el gasto es costo unitario × cantidad.
func (uc *AggregatorUseCase) AssetAcquisitions(ctx context.Context, scope dto.Scope, business, inventoryType, from, to string) (*dto.AssetAcquisitionReport, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.AssetAcquisitions(ctx, business, inventoryType, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	report := &dto.AssetAcquisitionReport{
		Rows:       make([]dto.AssetAcquisitionReportRow, 0, len(rows)),
		TotalSpent: decimal.Zero,
		TotalQty:   decimal.Zero,
	}
	for _, r := range rows {
		lineTotal := r.AcquisitionCost.Mul(r.Quantity)
		report.Rows = append(report.Rows, dto.AssetAcquisitionReportRow{
			AssetName:       r.AssetName,
			AssetType:       r.AssetType,
			AcquisitionDate: r.AcquisitionDate.Format(dto.DateLayout),
			AcquisitionCost: r.AcquisitionCost,
			DeliveryCost:    r.DeliveryCost,
			Quantity:        r.Quantity,
			LineTotal:       lineTotal,
			ShopLink:        r.ShopLink,
		})
		report.TotalSpent = report.TotalSpent.Add(lineTotal)
		report.TotalQty = report.TotalQty.Add(r.Quantity)
	}
	return report, nil
}

// AssetsSummary agrupa los activos del negocio por imagen/nombre/tipo/estado.
func (uc *AggregatorUseCase) AssetsSummary(ctx context.Context, scope dto.Scope, business, inventoryType string) ([]*dto.AssetSummaryReportRow, error) {
	if err := checkBusiness(scope, business); err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.AssetsSummary(ctx, business, inventoryType)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetSummaryReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.AssetSummaryReportRow{
			PicturePath: r.PicturePath,
			Name:        r.Name,
			Type:        r.Type,
			Status:      r.Status,
			TotalQty:    r.TotalQuantity,
		})
	}
	return out, nil
}

func checkBusiness(scope dto.Scope, business string) error {
	if business == "" {
		return domain.ErrInvalidInput
	}
	if !scope.Allows(business) {
		return domain.ErrForbidden
	}
	return nil
}

// parseWindow convierte una ventana opcional; vacía → sin límite. Si ambos
// extremos están presentes, from ≤ to.
func parseWindow(from, to string) (*time.Time, *time.Time, error) {
	fromDate, err := dto.ParseOptionalDate(from)
	if err != nil {
		return nil, nil, err
	}
	toDate, err := dto.ParseOptionalDate(to)
	if err != nil {
		return nil, nil, err
	}
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return nil, nil, domain.ErrInvalidInput
	}
	return fromDate, toDate, nil
}
