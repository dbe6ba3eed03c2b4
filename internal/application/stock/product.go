package stock

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

// ProductUseCase administra el catálogo de productos perecederos.
// El stock nunca vive aquí: solo los datos maestros del producto.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create da de alta un producto. OpeningStock y LowStockLevel no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, scope dto.Scope, input dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if input.Name == "" || input.Business == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.OpeningStock.LessThan(decimal.Zero) || input.LowStockLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(input.Business) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		Unit:          input.Unit,
		OpeningStock:  input.OpeningStock,
		LowStockLevel: input.LowStockLevel,
		PhotoPath:     input.PhotoPath,
		Business:      input.Business,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get devuelve un producto por id, verificando el ámbito de negocio.
func (uc *ProductUseCase) Get(ctx context.Context, scope dto.Scope, id string) (*dto.ProductResponse, error) {
	product, err := uc.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita los campos presentes (punteros no nil) de un producto.
// Cambiar OpeningStock altera el saldo derivado de toda la historia.
func (uc *ProductUseCase) Update(ctx context.Context, scope dto.Scope, id string, input dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.OpeningStock != nil {
		if input.OpeningStock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.OpeningStock = *input.OpeningStock
	}
	if input.LowStockLevel != nil {
		if input.LowStockLevel.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockLevel = *input.LowStockLevel
	}
	if input.PhotoPath != nil {
		product.PhotoPath = *input.PhotoPath
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve los productos de un negocio con filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, scope dto.Scope, business, search, category string) ([]*dto.ProductResponse, error) {
	if business == "" {
		return nil, domain.ErrInvalidInput
	}
	if !scope.Allows(business) {
		return nil, domain.ErrForbidden
	}
	products, err := uc.productRepo.ListByBusiness(ctx, business, search, category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto; el store elimina en cascada sus eventos y lotes.
func (uc *ProductUseCase) Delete(ctx context.Context, scope dto.Scope, id string) error {
	if _, err := uc.getScoped(ctx, scope, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) getScoped(ctx context.Context, scope dto.Scope, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
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

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Unit:          p.Unit,
		OpeningStock:  p.OpeningStock,
		LowStockLevel: p.LowStockLevel,
		PhotoPath:     p.PhotoPath,
		Business:      p.Business,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
