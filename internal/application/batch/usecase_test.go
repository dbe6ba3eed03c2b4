package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/batch"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) ListByBusiness(_ context.Context, business, _, _ string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Business == business {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeDeliveryRepo struct {
	events map[string]*entity.DeliveryEvent
	lots   *fakeLotRepo
}

func (f *fakeDeliveryRepo) Create(_ context.Context, e *entity.DeliveryEvent) error {
	f.events[e.ID] = e
	return nil
}
func (f *fakeDeliveryRepo) GetByID(_ context.Context, id string) (*entity.DeliveryEvent, error) {
	return f.events[id], nil
}
func (f *fakeDeliveryRepo) GetByIDForUpdate(_ context.Context, id string) (*entity.DeliveryEvent, error) {
	return f.events[id], nil
}
func (f *fakeDeliveryRepo) Update(_ context.Context, e *entity.DeliveryEvent) error {
	f.events[e.ID] = e
	return nil
}
func (f *fakeDeliveryRepo) ListByProduct(_ context.Context, productID string) ([]*entity.DeliveryEvent, error) {
	var out []*entity.DeliveryEvent
	for _, e := range f.events {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}
// Delete replica la cascada del esquema: el evento arrastra sus lotes.
func (f *fakeDeliveryRepo) Delete(_ context.Context, id string) error {
	delete(f.events, id)
	for _, l := range f.lots.lots {
		if l.DeliveryEventID == id {
			delete(f.lots.lots, l.ID)
		}
	}
	return nil
}

type fakeLotRepo struct {
	lots     map[string]*entity.ExpiryLot
	delivery *fakeDeliveryRepo
}

func (f *fakeLotRepo) Create(_ context.Context, l *entity.ExpiryLot) error {
	f.lots[l.ID] = l
	return nil
}
func (f *fakeLotRepo) GetByID(_ context.Context, id string) (*entity.ExpiryLot, error) {
	return f.lots[id], nil
}
func (f *fakeLotRepo) ListByEvent(_ context.Context, eventID string) ([]*entity.ExpiryLot, error) {
	var out []*entity.ExpiryLot
	for _, l := range f.lots {
		if l.DeliveryEventID == eventID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *fakeLotRepo) ListByProduct(_ context.Context, productID string) ([]*entity.ExpiryLot, error) {
	var out []*entity.ExpiryLot
	for _, l := range f.lots {
		if e := f.delivery.events[l.DeliveryEventID]; e != nil && e.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *fakeLotRepo) SumByEvent(_ context.Context, eventID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, l := range f.lots {
		if l.DeliveryEventID == eventID {
			sum = sum.Add(l.Quantity)
		}
	}
	return sum, nil
}
func (f *fakeLotRepo) Delete(_ context.Context, id string) error {
	delete(f.lots, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes; la
// atomicidad real la cubre el adaptador de postgres.
type fakeTxRunner struct {
	eventRepo repository.DeliveryEventRepository
	lotRepo   repository.ExpiryLotRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	eventRepo repository.DeliveryEventRepository,
	lotRepo repository.ExpiryLotRepository,
) error) error {
	return fn(f.eventRepo, f.lotRepo)
}

func newAllocatorFixture(eventQty string) (*batch.AllocatorUseCase, dto.Scope, string) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p-1": {ID: "p-1", Name: "Tomate", Business: "restaurant"},
	}}
	deliveries := &fakeDeliveryRepo{events: map[string]*entity.DeliveryEvent{
		"in-1": {
			ID:           "in-1",
			ProductID:    "p-1",
			DeliveryDate: time.Now(),
			Quantity:     decimal.RequireFromString(eventQty),
		},
	}}
	lots := &fakeLotRepo{lots: map[string]*entity.ExpiryLot{}, delivery: deliveries}
	deliveries.lots = lots
	runner := &fakeTxRunner{eventRepo: deliveries, lotRepo: lots}
	uc := batch.NewAllocatorUseCase(runner, products, deliveries, lots)
	scope := dto.Scope{Businesses: []string{"restaurant"}}
	return uc, scope, "in-1"
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La suma de los lotes de un evento nunca puede superar la cantidad del evento:
// dos lotes de 4 sobre un evento de 10 caben, un tercero de 4 no (8+4 > 10).
func TestAddLot_RechazaSobreasignacion(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{
			ExpiryDate: "2026-09-10",
			Quantity:   decimal.RequireFromString("4"),
		})
		require.NoError(t, err, "los lotes dentro del límite deben aceptarse")
	}

	_, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{
		ExpiryDate: "2026-09-12",
		Quantity:   decimal.RequireFromString("4"),
	})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded,
		"el lote que supera la cantidad del evento debe rechazarse")
}

// Asignar exactamente la cantidad restante es válido: el límite es ≤, no <.
func TestAddLot_PermiteLimiteExacto(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")
	ctx := context.Background()

	_, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("6")})
	require.NoError(t, err)
	_, err = uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("4")})
	assert.NoError(t, err, "completar exactamente la cantidad del evento debe aceptarse")
}

// Eliminar un lote libera cantidad: tras el borrado la asignación rechazada vuelve a caber.
func TestRemoveLot_LiberaCantidad(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")
	ctx := context.Background()

	lot, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("8")})
	require.NoError(t, err)

	_, err = uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("5")})
	require.ErrorIs(t, err, domain.ErrLimitExceeded)

	require.NoError(t, uc.RemoveLot(ctx, scope, lot.ID))

	_, err = uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("5")})
	assert.NoError(t, err, "tras eliminar el lote la cantidad debe quedar libre")
}

// Un lote sin fecha de vencimiento es válido y nunca genera alerta.
func TestAddLot_SinFechaNoClasifica(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")

	lot, err := uc.AddLot(context.Background(), scope, eventID, dto.AddLotRequest{
		Quantity: decimal.RequireFromString("3"),
	})
	require.NoError(t, err)
	assert.Empty(t, lot.ExpiryDate, "sin fecha no hay fecha serializada")
	assert.Empty(t, lot.Status, "sin fecha no hay etiqueta")
	assert.Empty(t, lot.Tier, "sin fecha no hay tier")
}

// Un lote ya vencido aparece como Expired en la vista de detalle.
func TestListLots_MarcaVencidos(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")
	ctx := context.Background()

	ayer := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	_, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{
		ExpiryDate: ayer,
		Quantity:   decimal.RequireFromString("2"),
	})
	require.NoError(t, err)

	lots, err := uc.ListLots(ctx, scope, eventID)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "Expired", lots[0].Status, "el detalle debe reportar los lotes vencidos")
	assert.Equal(t, "expired", lots[0].Tier)
}

// El límite de conservación es el único chequeo sobre la cantidad: un lote de
// cantidad cero es válido y no consume nada del evento.
func TestAddLot_CantidadSinValidar(t *testing.T) {
	uc, scope, eventID := newAllocatorFixture("10")
	ctx := context.Background()

	_, err := uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.Zero})
	require.NoError(t, err, "cantidad cero se acepta")

	_, err = uc.AddLot(ctx, scope, eventID, dto.AddLotRequest{Quantity: decimal.RequireFromString("10")})
	assert.NoError(t, err, "el lote de cero no consumió cantidad del evento")
}

// Un evento inexistente se rechaza con not found.
func TestAddLot_EventoInexistente(t *testing.T) {
	uc, scope, _ := newAllocatorFixture("10")

	_, err := uc.AddLot(context.Background(), scope, "no-existe", dto.AddLotRequest{Quantity: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "evento inexistente debe dar not found")
}

// Eliminar el evento padre arrastra sus lotes: tras la cascada no sobrevive
// ningún lote huérfano del evento.
func TestDeleteEvento_CascadaDeLotes(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p-1": {ID: "p-1", Name: "Tomate", Business: "restaurant"},
	}}
	deliveries := &fakeDeliveryRepo{events: map[string]*entity.DeliveryEvent{
		"in-1": {ID: "in-1", ProductID: "p-1", DeliveryDate: time.Now(), Quantity: decimal.RequireFromString("10")},
	}}
	lots := &fakeLotRepo{lots: map[string]*entity.ExpiryLot{}, delivery: deliveries}
	deliveries.lots = lots
	runner := &fakeTxRunner{eventRepo: deliveries, lotRepo: lots}
	uc := batch.NewAllocatorUseCase(runner, products, deliveries, lots)
	scope := dto.Scope{Businesses: []string{"restaurant"}}
	ctx := context.Background()

	_, err := uc.AddLot(ctx, scope, "in-1", dto.AddLotRequest{ExpiryDate: "2026-09-10", Quantity: decimal.RequireFromString("4")})
	require.NoError(t, err)
	_, err = uc.AddLot(ctx, scope, "in-1", dto.AddLotRequest{Quantity: decimal.RequireFromString("3")})
	require.NoError(t, err)

	require.NoError(t, deliveries.Delete(ctx, "in-1"))

	got, err := uc.ListProductLots(ctx, scope, "p-1")
	require.NoError(t, err)
	assert.Empty(t, got, "el producto no conserva lotes de un evento eliminado")

	_, err = uc.AddLot(ctx, scope, "in-1", dto.AddLotRequest{Quantity: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El ámbito de negocios del token limita el acceso a los eventos.
func TestAddLot_FueraDeAmbito(t *testing.T) {
	uc, _, eventID := newAllocatorFixture("10")

	otro := dto.Scope{Businesses: []string{"minimarket"}}
	_, err := uc.AddLot(context.Background(), otro, eventID, dto.AddLotRequest{
		Quantity: decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un negocio ajeno no puede asignar lotes")
}
