package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/expiry"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// LedgerUseCase es el libro mayor de perecederos: registra eventos IN/OUT
// append-only y deriva el stock en lectura. Registrar una salida no valida
// contra el disponible: el saldo puede quedar negativo a propósito.
type LedgerUseCase struct {
	productRepo    repository.ProductRepository
	deliveryRepo   repository.DeliveryEventRepository
	withdrawalRepo repository.WithdrawalEventRepository
	stockRepo      repository.StockRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryEventRepository,
	withdrawalRepo repository.WithdrawalEventRepository,
	stockRepo repository.StockRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		productRepo:    productRepo,
		deliveryRepo:   deliveryRepo,
		withdrawalRepo: withdrawalRepo,
		stockRepo:      stockRepo,
	}
}

// RecordDelivery registra un evento IN para un producto existente. La cantidad
// no se valida: el libro acepta cualquier decimal, incluso cero o negativo.
func (uc *LedgerUseCase) RecordDelivery(ctx context.Context, scope dto.Scope, input dto.RecordDeliveryRequest) (*dto.DeliveryEventResponse, error) {
	date, err := dto.ParseDate(input.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if _, err := uc.productScoped(ctx, scope, input.ProductID); err != nil {
		return nil, err
	}

	event := &entity.DeliveryEvent{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		DeliveryDate: date,
		Quantity:     input.Quantity,
		CreatedAt:    time.Now(),
	}
	if err := uc.deliveryRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return toDeliveryResponse(event), nil
}

// UpdateDelivery edita fecha y cantidad de un evento IN. No revalida los
// lotes de vencimiento ya asignados contra la nueva cantidad.
func (uc *LedgerUseCase) UpdateDelivery(ctx context.Context, scope dto.Scope, id string, input dto.UpdateDeliveryRequest) (*dto.DeliveryEventResponse, error) {
	date, err := dto.ParseDate(input.DeliveryDate)
	if err != nil {
		return nil, err
	}

	event, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.productScoped(ctx, scope, event.ProductID); err != nil {
		return nil, err
	}

	event.DeliveryDate = date
	event.Quantity = input.Quantity
	if err := uc.deliveryRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return toDeliveryResponse(event), nil
}

// DeleteDelivery elimina un evento IN; el store elimina en cascada sus lotes.
func (uc *LedgerUseCase) DeleteDelivery(ctx context.Context, scope dto.Scope, id string) error {
	event, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.productScoped(ctx, scope, event.ProductID); err != nil {
		return err
	}
	return uc.deliveryRepo.Delete(ctx, id)
}

// RecordWithdrawal registra un evento OUT sin chequear disponibilidad ni la
// cantidad: igual que las entregas, se acepta cualquier decimal.
func (uc *LedgerUseCase) RecordWithdrawal(ctx context.Context, scope dto.Scope, input dto.RecordWithdrawalRequest) (*dto.WithdrawalEventResponse, error) {
	date, err := dto.ParseDate(input.OutDate)
	if err != nil {
		return nil, err
	}
	if _, err := uc.productScoped(ctx, scope, input.ProductID); err != nil {
		return nil, err
	}

	event := &entity.WithdrawalEvent{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		OutDate:   date,
		OutTime:   input.OutTime,
		Quantity:  input.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.withdrawalRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return toWithdrawalResponse(event), nil
}

// UpdateWithdrawal edita un evento OUT.
func (uc *LedgerUseCase) UpdateWithdrawal(ctx context.Context, scope dto.Scope, id string, input dto.UpdateWithdrawalRequest) (*dto.WithdrawalEventResponse, error) {
	date, err := dto.ParseDate(input.OutDate)
	if err != nil {
		return nil, err
	}

	event, err := uc.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.productScoped(ctx, scope, event.ProductID); err != nil {
		return nil, err
	}

	event.OutDate = date
	event.OutTime = input.OutTime
	event.Quantity = input.Quantity
	if err := uc.withdrawalRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return toWithdrawalResponse(event), nil
}

// DeleteWithdrawal elimina un evento OUT.
func (uc *LedgerUseCase) DeleteWithdrawal(ctx context.Context, scope dto.Scope, id string) error {
	event, err := uc.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.productScoped(ctx, scope, event.ProductID); err != nil {
		return err
	}
	return uc.withdrawalRepo.Delete(ctx, id)
}

// ComputeStock deriva las cifras de stock de un producto. Con ventana [from,to]
// los totales IN/OUT se restringen a ella, pero el saldo final se calcula
// SIEMPRE sobre la historia completa.
func (uc *LedgerUseCase) ComputeStock(ctx context.Context, scope dto.Scope, productID, from, to string) (*dto.StockFigures, error) {
	product, err := uc.productScoped(ctx, scope, productID)
	if err != nil {
		return nil, err
	}

	summary, err := uc.stockRepo.Summary(ctx, productID, time.Now())
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, domain.ErrNotFound
	}

	figures := &dto.StockFigures{
		ProductID:    productID,
		Opening:      product.OpeningStock,
		InTotal:      summary.InTotal,
		OutTotal:     summary.OutTotal,
		Ending:       summary.Ending,
		NextExpiry:   dto.FormatDate(summary.NextExpiry),
		Expiring3Qty: summary.Expiring3Qty,
		Expiring7Qty: summary.Expiring7Qty,
	}

	if from != "" || to != "" {
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
		totals, err := uc.stockRepo.PeriodTotals(ctx, productID, fromDate, toDate)
		if err != nil {
			return nil, err
		}
		figures.InTotal = totals.InTotal
		figures.OutTotal = totals.OutTotal
	}
	return figures, nil
}

// ListStock devuelve una fila de stock por producto del negocio, con la
// clasificación resumen del vencimiento más próximo y la marca de stock bajo.
// Cuando ambas alertas aplican, el stock bajo tiene precedencia en la fila.
func (uc *LedgerUseCase) ListStock(ctx context.Context, scope dto.Scope, business, search, category string) ([]*dto.StockRow, error) {
	if business == "" {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(business) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	summaries, err := uc.stockRepo.ListByBusiness(ctx, business, search, category, now)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.StockRow, 0, len(summaries))
	for _, s := range summaries {
		row := &dto.StockRow{
			ProductID:    s.Product.ID,
			Name:         s.Product.Name,
			Category:     s.Product.Category,
			Unit:         s.Product.Unit,
			Opening:      s.Product.OpeningStock,
			InTotal:      s.InTotal,
			OutTotal:     s.OutTotal,
			Ending:       s.Ending,
			LowStock:     s.LowStock(),
			Expiring3Qty: s.Expiring3Qty,
			Expiring7Qty: s.Expiring7Qty,
		}
		class := expiry.ClassifySummary(now, s.NextExpiry)
		row.ExpiryLabel = class.Label
		if !row.LowStock {
			row.ExpiryTier = string(class.Tier)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListDeliveries devuelve los eventos IN de un producto.
func (uc *LedgerUseCase) ListDeliveries(ctx context.Context, scope dto.Scope, productID string) ([]*dto.DeliveryEventResponse, error) {
	if _, err := uc.productScoped(ctx, scope, productID); err != nil {
		return nil, err
	}
	events, err := uc.deliveryRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toDeliveryResponse(e))
	}
	return out, nil
}

// ListWithdrawals devuelve los eventos OUT de un producto.
func (uc *LedgerUseCase) ListWithdrawals(ctx context.Context, scope dto.Scope, productID string) ([]*dto.WithdrawalEventResponse, error) {
	if _, err := uc.productScoped(ctx, scope, productID); err != nil {
		return nil, err
	}
	events, err := uc.withdrawalRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toWithdrawalResponse(e))
	}
	return out, nil
}

func (uc *LedgerUseCase) productScoped(ctx context.Context, scope dto.Scope, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.Allows(product.Business) {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toDeliveryResponse(e *entity.DeliveryEvent) *dto.DeliveryEventResponse {
	return &dto.DeliveryEventResponse{
		ID:           e.ID,
		ProductID:    e.ProductID,
		DeliveryDate: e.DeliveryDate.Format(dto.DateLayout),
		Quantity:     e.Quantity,
	}
}

func toWithdrawalResponse(e *entity.WithdrawalEvent) *dto.WithdrawalEventResponse {
	return &dto.WithdrawalEventResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		OutDate:   e.OutDate.Format(dto.DateLayout),
		OutTime:   e.OutTime,
		Quantity:  e.Quantity,
	}
}
