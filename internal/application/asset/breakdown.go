package asset

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Operaciones de los dos desgloses de un activo. Cada alta o edición corre en
// una transacción con la fila del activo bloqueada (SELECT FOR UPDATE); en las
// ediciones la suma excluye la fila que se modifica.

// AddStatusAllocation asigna cantidad de un activo a un estado de la
// enumeración fija. Rechaza con ErrLimitExceeded si la suma del desglose
// superaría la cantidad declarada del activo.
func (uc *LedgerUseCase) AddStatusAllocation(ctx context.Context, scope dto.Scope, assetID string, input dto.AddStatusAllocationRequest) (*dto.StatusAllocationResponse, error) {
	if !entity.IsValidAssetStatus(input.Status) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.getScoped(ctx, scope, assetID); err != nil {
		return nil, err
	}

	alloc := &entity.StatusAllocation{
		ID:       uuid.New().String(),
		AssetID:  assetID,
		Status:   input.Status,
		Quantity: input.Quantity,
	}
	err := uc.txRunner.RunAsset(ctx, func(
		assetRepo repository.AssetRepository,
		statusRepo repository.StatusAllocationRepository,
		_ repository.AcquisitionLotRepository,
	) error {
		return checkAndWrite(ctx, assetRepo, assetID, input.Quantity,
			func() (decimal.Decimal, error) { return statusRepo.SumByAsset(ctx, assetID, "") },
			func() error { return statusRepo.Create(ctx, alloc) },
		)
	})
	if err != nil {
		return nil, err
	}
	return toStatusAllocationResponse(alloc), nil
}

// UpdateStatusAllocation edita una asignación; la revalidación excluye la
// propia fila, con lo que reducirla siempre es válido.
func (uc *LedgerUseCase) UpdateStatusAllocation(ctx context.Context, scope dto.Scope, id string, input dto.AddStatusAllocationRequest) (*dto.StatusAllocationResponse, error) {
	if !entity.IsValidAssetStatus(input.Status) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	alloc, err := uc.statusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.getScoped(ctx, scope, alloc.AssetID); err != nil {
		return nil, err
	}

	alloc.Status = input.Status
	alloc.Quantity = input.Quantity
	err = uc.txRunner.RunAsset(ctx, func(
		assetRepo repository.AssetRepository,
		statusRepo repository.StatusAllocationRepository,
		_ repository.AcquisitionLotRepository,
	) error {
		return checkAndWrite(ctx, assetRepo, alloc.AssetID, input.Quantity,
			func() (decimal.Decimal, error) { return statusRepo.SumByAsset(ctx, alloc.AssetID, alloc.ID) },
			func() error { return statusRepo.Update(ctx, alloc) },
		)
	})
	if err != nil {
		return nil, err
	}
	return toStatusAllocationResponse(alloc), nil
}

// RemoveStatusAllocation elimina una asignación sin condiciones.
func (uc *LedgerUseCase) RemoveStatusAllocation(ctx context.Context, scope dto.Scope, id string) error {
	alloc, err := uc.statusRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alloc == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.getScoped(ctx, scope, alloc.AssetID); err != nil {
		return err
	}
	return uc.statusRepo.Delete(ctx, id)
}

// ListStatusAllocations devuelve el desglose por estado de un activo.
func (uc *LedgerUseCase) ListStatusAllocations(ctx context.Context, scope dto.Scope, assetID string) ([]*dto.StatusAllocationResponse, error) {
	if _, err := uc.getScoped(ctx, scope, assetID); err != nil {
		return nil, err
	}
	allocs, err := uc.statusRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StatusAllocationResponse, 0, len(allocs))
	for _, a := range allocs {
		out = append(out, toStatusAllocationResponse(a))
	}
	return out, nil
}

// AddAcquisitionLot registra un lote de adquisición. Mismo chequeo de
// conservación que el desglose por estado, contra su propia suma: los dos
// desgloses nunca interactúan.
func (uc *LedgerUseCase) AddAcquisitionLot(ctx context.Context, scope dto.Scope, assetID string, input dto.AddAcquisitionLotRequest) (*dto.AcquisitionLotResponse, error) {
	lot, err := uc.buildAcquisitionLot(assetID, input)
	if err != nil {
		return nil, err
	}
	if _, err := uc.getScoped(ctx, scope, assetID); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunAsset(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.StatusAllocationRepository,
		acqRepo repository.AcquisitionLotRepository,
	) error {
		return checkAndWrite(ctx, assetRepo, assetID, input.Quantity,
			func() (decimal.Decimal, error) { return acqRepo.SumByAsset(ctx, assetID, "") },
			func() error { return acqRepo.Create(ctx, lot) },
		)
	})
	if err != nil {
		return nil, err
	}
	return toAcquisitionLotResponse(lot), nil
}

// UpdateAcquisitionLot edita un lote de adquisición excluyendo la propia fila
// de la revalidación.
func (uc *LedgerUseCase) UpdateAcquisitionLot(ctx context.Context, scope dto.Scope, id string, input dto.AddAcquisitionLotRequest) (*dto.AcquisitionLotResponse, error) {
	existing, err := uc.acqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	lot, err := uc.buildAcquisitionLot(existing.AssetID, input)
	if err != nil {
		return nil, err
	}
	lot.ID = existing.ID
	if _, err := uc.getScoped(ctx, scope, existing.AssetID); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunAsset(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.StatusAllocationRepository,
		acqRepo repository.AcquisitionLotRepository,
	) error {
		return checkAndWrite(ctx, assetRepo, lot.AssetID, input.Quantity,
			func() (decimal.Decimal, error) { return acqRepo.SumByAsset(ctx, lot.AssetID, lot.ID) },
			func() error { return acqRepo.Update(ctx, lot) },
		)
	})
	if err != nil {
		return nil, err
	}
	return toAcquisitionLotResponse(lot), nil
}

// RemoveAcquisitionLot elimina un lote sin condiciones.
func (uc *LedgerUseCase) RemoveAcquisitionLot(ctx context.Context, scope dto.Scope, id string) error {
	lot, err := uc.acqRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.getScoped(ctx, scope, lot.AssetID); err != nil {
		return err
	}
	return uc.acqRepo.Delete(ctx, id)
}

// ListAcquisitionLots devuelve el desglose por adquisición de un activo.
func (uc *LedgerUseCase) ListAcquisitionLots(ctx context.Context, scope dto.Scope, assetID string) ([]*dto.AcquisitionLotResponse, error) {
	if _, err := uc.getScoped(ctx, scope, assetID); err != nil {
		return nil, err
	}
	lots, err := uc.acqRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AcquisitionLotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, toAcquisitionLotResponse(l))
	}
	return out, nil
}

// AcquisitionTotals devuelve los agregados derivados de los lotes de un activo.
func (uc *LedgerUseCase) AcquisitionTotals(ctx context.Context, scope dto.Scope, assetID string) (*dto.AcquisitionTotalsResponse, error) {
	if _, err := uc.getScoped(ctx, scope, assetID); err != nil {
		return nil, err
	}
	totals, err := uc.acqRepo.TotalsByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = &entity.AcquisitionTotals{}
	}
	return &dto.AcquisitionTotalsResponse{
		AssetID:               assetID,
		TotalSpent:            totals.TotalSpent,
		TotalAcquiredQty:      totals.TotalQty,
		LatestAcquisitionDate: dto.FormatDate(totals.LatestDate),
	}, nil
}

func (uc *LedgerUseCase) buildAcquisitionLot(assetID string, input dto.AddAcquisitionLotRequest) (*entity.AcquisitionLot, error) {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.AcquisitionCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.DeliveryCost != nil && input.DeliveryCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(input.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	return &entity.AcquisitionLot{
		ID:              uuid.New().String(),
		AssetID:         assetID,
		AcquisitionDate: date,
		AcquisitionCost: input.AcquisitionCost,
		DeliveryCost:    input.DeliveryCost,
		Quantity:        input.Quantity,
		ShopLink:        input.ShopLink,
	}, nil
}

// checkAndWrite bloquea el activo, suma el desglose y escribe solo si la suma
// más la cantidad nueva no supera la cantidad declarada.
func checkAndWrite(
	ctx context.Context,
	assetRepo repository.AssetRepository,
	assetID string,
	qty decimal.Decimal,
	sum func() (decimal.Decimal, error),
	write func() error,
) error {
	asset, err := assetRepo.GetByIDForUpdate(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	allocated, err := sum()
	if err != nil {
		return err
	}
	if allocated.Add(qty).GreaterThan(asset.Quantity) {
		return domain.ErrLimitExceeded
	}
	return write()
}

func toStatusAllocationResponse(a *entity.StatusAllocation) *dto.StatusAllocationResponse {
	return &dto.StatusAllocationResponse{
		ID:       a.ID,
		AssetID:  a.AssetID,
		Status:   a.Status,
		Quantity: a.Quantity,
	}
}

func toAcquisitionLotResponse(l *entity.AcquisitionLot) *dto.AcquisitionLotResponse {
	return &dto.AcquisitionLotResponse{
		ID:              l.ID,
		AssetID:         l.AssetID,
		AcquisitionDate: l.AcquisitionDate.Format(dto.DateLayout),
		AcquisitionCost: l.AcquisitionCost,
		DeliveryCost:    l.DeliveryCost,
		Quantity:        l.Quantity,
		ShopLink:        l.ShopLink,
	}
}
