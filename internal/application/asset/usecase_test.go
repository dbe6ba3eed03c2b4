package asset_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/asset"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssetRepo struct {
	assets map[string]*entity.Asset
	status *fakeStatusRepo
	acq    *fakeAcqRepo
}

func (f *fakeAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	f.assets[a.ID] = a
	return nil
}
func (f *fakeAssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	return f.assets[id], nil
}
func (f *fakeAssetRepo) GetByIDForUpdate(_ context.Context, id string) (*entity.Asset, error) {
	return f.assets[id], nil
}
func (f *fakeAssetRepo) Update(_ context.Context, a *entity.Asset) error {
	f.assets[a.ID] = a
	return nil
}
func (f *fakeAssetRepo) ListByBusiness(_ context.Context, business, _, _, _ string) ([]*repository.AssetListRow, error) {
	var out []*repository.AssetListRow
	for _, a := range f.assets {
		if a.Business == business {
			out = append(out, &repository.AssetListRow{Asset: *a})
		}
	}
	return out, nil
}
// Delete replica la cascada del esquema: el activo arrastra ambos desgloses.
func (f *fakeAssetRepo) Delete(_ context.Context, id string) error {
	delete(f.assets, id)
	for _, a := range f.status.allocs {
		if a.AssetID == id {
			delete(f.status.allocs, a.ID)
		}
	}
	for _, l := range f.acq.lots {
		if l.AssetID == id {
			delete(f.acq.lots, l.ID)
		}
	}
	return nil
}

type fakeStatusRepo struct {
	allocs map[string]*entity.StatusAllocation
}

func (f *fakeStatusRepo) Create(_ context.Context, a *entity.StatusAllocation) error {
	f.allocs[a.ID] = a
	return nil
}
func (f *fakeStatusRepo) GetByID(_ context.Context, id string) (*entity.StatusAllocation, error) {
	return f.allocs[id], nil
}
func (f *fakeStatusRepo) Update(_ context.Context, a *entity.StatusAllocation) error {
	f.allocs[a.ID] = a
	return nil
}
func (f *fakeStatusRepo) ListByAsset(_ context.Context, assetID string) ([]*entity.StatusAllocation, error) {
	var out []*entity.StatusAllocation
	for _, a := range f.allocs {
		if a.AssetID == assetID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeStatusRepo) SumByAsset(_ context.Context, assetID, excludeID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range f.allocs {
		if a.AssetID == assetID && a.ID != excludeID {
			sum = sum.Add(a.Quantity)
		}
	}
	return sum, nil
}
func (f *fakeStatusRepo) Delete(_ context.Context, id string) error {
	delete(f.allocs, id)
	return nil
}

type fakeAcqRepo struct {
	lots map[string]*entity.AcquisitionLot
}

func (f *fakeAcqRepo) Create(_ context.Context, l *entity.AcquisitionLot) error {
	f.lots[l.ID] = l
	return nil
}
func (f *fakeAcqRepo) GetByID(_ context.Context, id string) (*entity.AcquisitionLot, error) {
	return f.lots[id], nil
}
func (f *fakeAcqRepo) Update(_ context.Context, l *entity.AcquisitionLot) error {
	f.lots[l.ID] = l
	return nil
}
func (f *fakeAcqRepo) ListByAsset(_ context.Context, assetID string) ([]*entity.AcquisitionLot, error) {
	var out []*entity.AcquisitionLot
	for _, l := range f.lots {
		if l.AssetID == assetID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *fakeAcqRepo) SumByAsset(_ context.Context, assetID, excludeID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, l := range f.lots {
		if l.AssetID == assetID && l.ID != excludeID {
			sum = sum.Add(l.Quantity)
		}
	}
	return sum, nil
}
func (f *fakeAcqRepo) TotalsByAsset(_ context.Context, assetID string) (*entity.AcquisitionTotals, error) {
	totals := &entity.AcquisitionTotals{TotalSpent: decimal.Zero, TotalQty: decimal.Zero}
	for _, l := range f.lots {
		if l.AssetID != assetID {
			continue
		}
		totals.TotalSpent = totals.TotalSpent.Add(l.AcquisitionCost.Mul(l.Quantity))
		totals.TotalQty = totals.TotalQty.Add(l.Quantity)
		if totals.LatestDate == nil || l.AcquisitionDate.After(*totals.LatestDate) {
			d := l.AcquisitionDate
			totals.LatestDate = &d
		}
	}
	return totals, nil
}
func (f *fakeAcqRepo) Delete(_ context.Context, id string) error {
	delete(f.lots, id)
	return nil
}

type fakeAssetTxRunner struct {
	assetRepo  repository.AssetRepository
	statusRepo repository.StatusAllocationRepository
	acqRepo    repository.AcquisitionLotRepository
}

func (f *fakeAssetTxRunner) RunAsset(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	statusRepo repository.StatusAllocationRepository,
	acqRepo repository.AcquisitionLotRepository,
) error) error {
	return fn(f.assetRepo, f.statusRepo, f.acqRepo)
}

type assetFixture struct {
	uc     *asset.LedgerUseCase
	scope  dto.Scope
	assets *fakeAssetRepo
	status *fakeStatusRepo
	acq    *fakeAcqRepo
}

func newAssetFixture(quantity string) *assetFixture {
	assets := &fakeAssetRepo{assets: map[string]*entity.Asset{
		"a-1": {
			ID:       "a-1",
			Name:     "Freidora",
			Quantity: decimal.RequireFromString(quantity),
			Business: "restaurant",
			Type:     "Kitchen",
		},
	}}
	status := &fakeStatusRepo{allocs: map[string]*entity.StatusAllocation{}}
	acq := &fakeAcqRepo{lots: map[string]*entity.AcquisitionLot{}}
	assets.status = status
	assets.acq = acq
	runner := &fakeAssetTxRunner{assetRepo: assets, statusRepo: status, acqRepo: acq}
	uc := asset.NewLedgerUseCase(runner, assets, status, acq)
	return &assetFixture{
		uc:     uc,
		scope:  dto.Scope{Businesses: []string{"restaurant"}},
		assets: assets,
		status: status,
		acq:    acq,
	}
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Desglose por estado
// ──────────────────────────────────────────────────────────────────────────────

// El desglose por estado no puede superar la cantidad declarada del activo.
func TestAddStatusAllocation_RespetaLimite(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("7")})
	require.NoError(t, err)

	_, err = fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Damaged", Quantity: qty("4")})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded, "7+4 supera la cantidad declarada de 10")

	_, err = fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Damaged", Quantity: qty("3")})
	assert.NoError(t, err, "completar exactamente la cantidad declarada es válido")
}

// La edición de una asignación excluye la fila editada de la suma: subir una
// asignación hasta el total declarado debe pasar aunque la fila vieja sumara.
func TestUpdateStatusAllocation_ExcluyeFilaEditada(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	alloc, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("6")})
	require.NoError(t, err)
	_, err = fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Missing", Quantity: qty("2")})
	require.NoError(t, err)

	// 2 (otra fila) + 8 (nueva cantidad) = 10: cabe solo si la propia fila de 6 no cuenta.
	updated, err := fx.uc.UpdateStatusAllocation(ctx, fx.scope, alloc.ID, dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("8")})
	require.NoError(t, err, "la revalidación debe excluir la fila que se edita")
	assert.True(t, updated.Quantity.Equal(qty("8")))

	_, err = fx.uc.UpdateStatusAllocation(ctx, fx.scope, alloc.ID, dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("9")})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded, "2+9 sigue superando la cantidad declarada")
}

// Solo se aceptan estados de la enumeración fija.
func TestAddStatusAllocation_EstadoInvalido(t *testing.T) {
	fx := newAssetFixture("10")

	_, err := fx.uc.AddStatusAllocation(context.Background(), fx.scope, "a-1", dto.AddStatusAllocationRequest{
		Status:   "Broken",
		Quantity: qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un estado fuera de la enumeración debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Desglose por adquisición
// ──────────────────────────────────────────────────────────────────────────────

// Los dos desgloses son independientes: llenar el de estados no consume el de
// adquisiciones, y cada uno respeta su propio límite.
func TestDesglosesIndependientes(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("10")})
	require.NoError(t, err)

	// El desglose por estado está lleno; el de adquisiciones sigue vacío.
	_, err = fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-01-15",
		AcquisitionCost: qty("120.50"),
		Quantity:        qty("10"),
	})
	require.NoError(t, err, "el desglose por adquisición tiene su propio límite")

	_, err = fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-02-01",
		AcquisitionCost: qty("99"),
		Quantity:        qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

// Los agregados de adquisición se derivan en lectura: gasto = costo unitario × cantidad.
func TestAcquisitionTotals_Derivados(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-01-15",
		AcquisitionCost: qty("100"),
		Quantity:        qty("4"),
	})
	require.NoError(t, err)
	_, err = fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-03-02",
		AcquisitionCost: qty("50"),
		Quantity:        qty("2"),
	})
	require.NoError(t, err)

	totals, err := fx.uc.AcquisitionTotals(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	assert.True(t, totals.TotalSpent.Equal(qty("500")), "gasto total = 100×4 + 50×2")
	assert.True(t, totals.TotalAcquiredQty.Equal(qty("6")))
	assert.Equal(t, "2026-03-02", totals.LatestAcquisitionDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Activo
// ──────────────────────────────────────────────────────────────────────────────

// Bajar la cantidad declarada NO revalida los desgloses existentes: el activo
// puede quedar con hijos que suman más que su cantidad.
func TestUpdateAsset_BajarCantidadNoRevalida(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("9")})
	require.NoError(t, err)

	nueva := qty("5")
	updated, err := fx.uc.UpdateAsset(ctx, fx.scope, "a-1", dto.UpdateAssetRequest{Quantity: &nueva})
	require.NoError(t, err, "bajar la cantidad declarada nunca falla por los hijos existentes")
	assert.True(t, updated.Quantity.Equal(nueva))

	// Pero una asignación nueva sí se valida contra la cantidad reducida.
	_, err = fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Missing", Quantity: qty("1")})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
}

// La duplicación crea identidad nueva, sufijo " (copy)" y copias profundas de
// ambos desgloses, sin tocar el original.
func TestDuplicateAsset_CopiaProfunda(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("6")})
	require.NoError(t, err)
	_, err = fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-01-15",
		AcquisitionCost: qty("100"),
		Quantity:        qty("3"),
	})
	require.NoError(t, err)

	dup, err := fx.uc.DuplicateAsset(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	assert.NotEqual(t, "a-1", dup.ID, "la copia tiene identidad propia")
	assert.Equal(t, "Freidora (copy)", dup.Name)
	assert.True(t, dup.Quantity.Equal(qty("10")))

	dupAllocs, err := fx.uc.ListStatusAllocations(ctx, fx.scope, dup.ID)
	require.NoError(t, err)
	require.Len(t, dupAllocs, 1)
	assert.NotEqual(t, dup.ID, dupAllocs[0].ID)
	assert.Equal(t, dup.ID, dupAllocs[0].AssetID)

	dupLots, err := fx.uc.ListAcquisitionLots(ctx, fx.scope, dup.ID)
	require.NoError(t, err)
	require.Len(t, dupLots, 1)
	assert.Equal(t, dup.ID, dupLots[0].AssetID)

	// El original conserva sus propios hijos.
	origAllocs, err := fx.uc.ListStatusAllocations(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	assert.Len(t, origAllocs, 1)
	origLots, err := fx.uc.ListAcquisitionLots(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	assert.Len(t, origLots, 1)
}

// Mutar los hijos de la copia no afecta al original (copia profunda real).
func TestDuplicateAsset_OriginalIntacto(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	orig, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("4")})
	require.NoError(t, err)

	dup, err := fx.uc.DuplicateAsset(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	dupAllocs, err := fx.uc.ListStatusAllocations(ctx, fx.scope, dup.ID)
	require.NoError(t, err)
	require.Len(t, dupAllocs, 1)

	_, err = fx.uc.UpdateStatusAllocation(ctx, fx.scope, dupAllocs[0].ID, dto.AddStatusAllocationRequest{Status: "Damaged", Quantity: qty("2")})
	require.NoError(t, err)

	kept, err := fx.uc.ListStatusAllocations(ctx, fx.scope, "a-1")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, orig.ID, kept[0].ID)
	assert.Equal(t, "Working", kept[0].Status, "editar la copia no debe tocar el original")
	assert.True(t, kept[0].Quantity.Equal(qty("4")))
}

// Eliminar un activo arrastra sus dos desgloses; los hijos de otros activos
// (aquí, los de la copia) no se ven afectados.
func TestDeleteAsset_CascadaDeDesgloses(t *testing.T) {
	fx := newAssetFixture("10")
	ctx := context.Background()

	_, err := fx.uc.AddStatusAllocation(ctx, fx.scope, "a-1", dto.AddStatusAllocationRequest{Status: "Working", Quantity: qty("6")})
	require.NoError(t, err)
	_, err = fx.uc.AddAcquisitionLot(ctx, fx.scope, "a-1", dto.AddAcquisitionLotRequest{
		AcquisitionDate: "2026-01-15",
		AcquisitionCost: qty("100"),
		Quantity:        qty("3"),
	})
	require.NoError(t, err)

	dup, err := fx.uc.DuplicateAsset(ctx, fx.scope, "a-1")
	require.NoError(t, err)

	require.NoError(t, fx.uc.DeleteAsset(ctx, fx.scope, "a-1"))

	_, err = fx.uc.GetAsset(ctx, fx.scope, "a-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, a := range fx.status.allocs {
		assert.NotEqual(t, "a-1", a.AssetID, "no sobreviven asignaciones del activo eliminado")
	}
	for _, l := range fx.acq.lots {
		assert.NotEqual(t, "a-1", l.AssetID, "no sobreviven lotes del activo eliminado")
	}

	dupAllocs, err := fx.uc.ListStatusAllocations(ctx, fx.scope, dup.ID)
	require.NoError(t, err)
	assert.Len(t, dupAllocs, 1, "la copia conserva su propio desglose por estado")
	dupLots, err := fx.uc.ListAcquisitionLots(ctx, fx.scope, dup.ID)
	require.NoError(t, err)
	assert.Len(t, dupLots, 1, "la copia conserva su propio desglose por adquisición")
}

// El ámbito de negocios limita todas las operaciones sobre el activo.
func TestAsset_FueraDeAmbito(t *testing.T) {
	fx := newAssetFixture("10")
	otro := dto.Scope{Businesses: []string{"minimarket"}}

	_, err := fx.uc.GetAsset(context.Background(), otro, "a-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.uc.DuplicateAsset(context.Background(), otro, "a-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un admin accede a cualquier negocio.
func TestAsset_AdminSinRestriccion(t *testing.T) {
	fx := newAssetFixture("10")
	admin := dto.Scope{IsAdmin: true}

	got, err := fx.uc.GetAsset(context.Background(), admin, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.ID)
}
