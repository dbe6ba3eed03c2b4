package batch

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

// AllocatorUseCase particiona eventos IN en lotes de vencimiento.
// Invariante de conservación: para cada evento, la suma de sus lotes nunca
// supera la cantidad del evento. El chequeo corre en una transacción con la
// fila del evento bloqueada (SELECT FOR UPDATE).
type AllocatorUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	deliveryRepo repository.DeliveryEventRepository
	lotRepo      repository.ExpiryLotRepository
}

// NewAllocatorUseCase construye el caso de uso.
func NewAllocatorUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryEventRepository,
	lotRepo repository.ExpiryLotRepository,
) *AllocatorUseCase {
	return &AllocatorUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		deliveryRepo: deliveryRepo,
		lotRepo:      lotRepo,
	}
}

// AddLot asigna cantidad de un evento IN a una fecha de vencimiento (o a
// ninguna). Dentro de una transacción: bloquea el evento, suma los lotes
// existentes y rechaza con ErrLimitExceeded si la suma más la nueva cantidad
// superaría la cantidad del evento. Ese límite es el único chequeo sobre la
// cantidad: cero o negativo se acepta igual que en el libro de eventos.
func (uc *AllocatorUseCase) AddLot(ctx context.Context, scope dto.Scope, deliveryEventID string, input dto.AddLotRequest) (*dto.LotResponse, error) {
	if deliveryEventID == "" {
		return nil, domain.ErrInvalidInput
	}
	expiryDate, err := dto.ParseOptionalDate(input.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if err := uc.eventScoped(ctx, scope, deliveryEventID); err != nil {
		return nil, err
	}

	lot := &entity.ExpiryLot{
		ID:              uuid.New().String(),
		DeliveryEventID: deliveryEventID,
		ExpiryDate:      expiryDate,
		Quantity:        input.Quantity,
	}

	err = uc.txRunner.Run(ctx, func(
		eventRepo repository.DeliveryEventRepository,
		lotRepo repository.ExpiryLotRepository,
	) error {
		event, err := eventRepo.GetByIDForUpdate(ctx, deliveryEventID)
		if err != nil {
			return err
		}
		if event == nil {
			return domain.ErrNotFound
		}
		allocated, err := lotRepo.SumByEvent(ctx, deliveryEventID)
		if err != nil {
			return err
		}
		if allocated.Add(input.Quantity).GreaterThan(event.Quantity) {
			return domain.ErrLimitExceeded
		}
		return lotRepo.Create(ctx, lot)
	})
	if err != nil {
		return nil, err
	}
	return uc.toLotResponse(lot, time.Now()), nil
}

// RemoveLot elimina un lote sin condiciones: liberar cantidad siempre es válido.
func (uc *AllocatorUseCase) RemoveLot(ctx context.Context, scope dto.Scope, lotID string) error {
	if lotID == "" {
		return domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	if err := uc.eventScoped(ctx, scope, lot.DeliveryEventID); err != nil {
		return err
	}
	return uc.lotRepo.Delete(ctx, lotID)
}

// ListLots devuelve los lotes de un evento IN con su clasificación de detalle.
func (uc *AllocatorUseCase) ListLots(ctx context.Context, scope dto.Scope, deliveryEventID string) ([]*dto.LotResponse, error) {
	if deliveryEventID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.eventScoped(ctx, scope, deliveryEventID); err != nil {
		return nil, err
	}
	lots, err := uc.lotRepo.ListByEvent(ctx, deliveryEventID)
	if err != nil {
		return nil, err
	}
	return uc.toLotResponses(lots), nil
}

// ListProductLots devuelve todos los lotes de un producto (a través de sus
// eventos IN) con clasificación de detalle: aquí un lote vencido sí se
// reporta como Expired.
func (uc *AllocatorUseCase) ListProductLots(ctx context.Context, scope dto.Scope, productID string) ([]*dto.LotResponse, error) {
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
	lots, err := uc.lotRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.toLotResponses(lots), nil
}

// eventScoped verifica que el evento exista y su producto esté en el ámbito.
func (uc *AllocatorUseCase) eventScoped(ctx context.Context, scope dto.Scope, deliveryEventID string) error {
	event, err := uc.deliveryRepo.GetByID(ctx, deliveryEventID)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, event.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !scope.Allows(product.Business) {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *AllocatorUseCase) toLotResponses(lots []*entity.ExpiryLot) []*dto.LotResponse {
	now := time.Now()
	out := make([]*dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, uc.toLotResponse(lot, now))
	}
	return out
}

func (uc *AllocatorUseCase) toLotResponse(lot *entity.ExpiryLot, now time.Time) *dto.LotResponse {
	class := expiry.ClassifyDetail(now, lot.ExpiryDate)
	return &dto.LotResponse{
		ID:              lot.ID,
		DeliveryEventID: lot.DeliveryEventID,
		ExpiryDate:      dto.FormatDate(lot.ExpiryDate),
		Quantity:        lot.Quantity,
		Status:          class.Label,
		Tier:            string(class.Tier),
	}
}
