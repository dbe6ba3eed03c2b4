package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// LedgerUseCase administra activos fijos y sus dos desgloses parciales e
// independientes: por estado y por adquisición. Cada desglose conserva su
// propio invariante Σ(hijos) ≤ asset.Quantity; bajar la cantidad declarada
// de un activo NO revalida los hijos existentes.
type LedgerUseCase struct {
	txRunner   TxRunner
	assetRepo  repository.AssetRepository
	statusRepo repository.StatusAllocationRepository
	acqRepo    repository.AcquisitionLotRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	statusRepo repository.StatusAllocationRepository,
	acqRepo repository.AcquisitionLotRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:   txRunner,
		assetRepo:  assetRepo,
		statusRepo: statusRepo,
		acqRepo:    acqRepo,
	}
}

// CreateAsset da de alta un activo fijo.
func (uc *LedgerUseCase) CreateAsset(ctx context.Context, scope dto.Scope, input dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if input.Name == "" || input.Business == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(input.Business) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	asset := &entity.Asset{
		ID:             uuid.New().String(),
		PicturePath:    input.PicturePath,
		Name:           input.Name,
		Brand:          input.Brand,
		Model:          input.Model,
		Specifications: input.Specifications,
		SeriesNumber:   input.SeriesNumber,
		Quantity:       input.Quantity,
		Location:       input.Location,
		Status:         input.Status,
		Business:       input.Business,
		Type:           input.Type,
		InventoryType:  input.InventoryType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset, nil), nil
}

// GetAsset devuelve un activo con sus agregados de adquisición derivados.
func (uc *LedgerUseCase) GetAsset(ctx context.Context, scope dto.Scope, id string) (*dto.AssetResponse, error) {
	asset, err := uc.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	totals, err := uc.acqRepo.TotalsByAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAssetResponse(asset, totals), nil
}

// UpdateAsset edita los campos presentes. Bajar Quantity por debajo de lo ya
// desglosado NO falla: los hijos existentes no se revalidan.
func (uc *LedgerUseCase) UpdateAsset(ctx context.Context, scope dto.Scope, id string, input dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		asset.Name = *input.Name
	}
	if input.PicturePath != nil {
		asset.PicturePath = *input.PicturePath
	}
	if input.Brand != nil {
		asset.Brand = *input.Brand
	}
	if input.Model != nil {
		asset.Model = *input.Model
	}
	if input.Specifications != nil {
		asset.Specifications = *input.Specifications
	}
	if input.SeriesNumber != nil {
		asset.SeriesNumber = *input.SeriesNumber
	}
	if input.Quantity != nil {
		if input.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		asset.Quantity = *input.Quantity
	}
	if input.Location != nil {
		asset.Location = *input.Location
	}
	if input.Status != nil {
		asset.Status = *input.Status
	}
	if input.Type != nil {
		asset.Type = *input.Type
	}
	asset.UpdatedAt = time.Now()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset, nil), nil
}

// DeleteAsset elimina un activo; el store elimina en cascada sus desgloses.
func (uc *LedgerUseCase) DeleteAsset(ctx context.Context, scope dto.Scope, id string) error {
	if _, err := uc.getScoped(ctx, scope, id); err != nil {
		return err
	}
	return uc.assetRepo.Delete(ctx, id)
}

// ListAssets devuelve los activos de un negocio con filtros opcionales y los
// agregados de adquisición calculados en lectura.
func (uc *LedgerUseCase) ListAssets(ctx context.Context, scope dto.Scope, business, inventoryType, search, typeFilter string) ([]*dto.AssetResponse, error) {
	if business == "" {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(business) {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.assetRepo.ListByBusiness(ctx, business, inventoryType, search, typeFilter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAssetResponse(&row.Asset, &row.Totals))
	}
	return out, nil
}

// DuplicateAsset crea una copia profunda de un activo: identidad nueva, nombre
// con sufijo " (copy)" y copias de ambos desgloses, todo en una transacción.
// El activo original no se toca.
func (uc *LedgerUseCase) DuplicateAsset(ctx context.Context, scope dto.Scope, id string) (*dto.AssetResponse, error) {
	source, err := uc.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	copyAsset := *source
	copyAsset.ID = uuid.New().String()
	copyAsset.Name = source.Name + " (copy)"
	copyAsset.CreatedAt = now
	copyAsset.UpdatedAt = now

	err = uc.txRunner.RunAsset(ctx, func(
		assetRepo repository.AssetRepository,
		statusRepo repository.StatusAllocationRepository,
		acqRepo repository.AcquisitionLotRepository,
	) error {
		if err := assetRepo.Create(ctx, &copyAsset); err != nil {
			return err
		}
		allocs, err := statusRepo.ListByAsset(ctx, source.ID)
		if err != nil {
			return err
		}
		for _, alloc := range allocs {
			dup := *alloc
			dup.ID = uuid.New().String()
			dup.AssetID = copyAsset.ID
			if err := statusRepo.Create(ctx, &dup); err != nil {
				return err
			}
		}
		lots, err := acqRepo.ListByAsset(ctx, source.ID)
		if err != nil {
			return err
		}
		for _, lot := range lots {
			dup := *lot
			dup.ID = uuid.New().String()
			dup.AssetID = copyAsset.ID
			if err := acqRepo.Create(ctx, &dup); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(&copyAsset, nil), nil
}

func (uc *LedgerUseCase) getScoped(ctx context.Context, scope dto.Scope, id string) (*entity.Asset, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.Allows(asset.Business) {
		return nil, domain.ErrForbidden
	}
	return asset, nil
}

func toAssetResponse(a *entity.Asset, totals *entity.AcquisitionTotals) *dto.AssetResponse {
	resp := &dto.AssetResponse{
		ID:             a.ID,
		PicturePath:    a.PicturePath,
		Name:           a.Name,
		Brand:          a.Brand,
		Model:          a.Model,
		Specifications: a.Specifications,
		SeriesNumber:   a.SeriesNumber,
		Quantity:       a.Quantity,
		Location:       a.Location,
		Status:         a.Status,
		Business:       a.Business,
		Type:           a.Type,
		InventoryType:  a.InventoryType,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if totals != nil {
		spent := totals.TotalSpent
		qty := totals.TotalQty
		resp.TotalSpent = &spent
		resp.TotalAcquiredQty = &qty
		resp.LatestAcquisitionDate = dto.FormatDate(totals.LatestDate)
	}
	return resp
}
