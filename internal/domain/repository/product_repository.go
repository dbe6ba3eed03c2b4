package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Delete elimina en cascada los eventos IN/OUT del producto y sus lotes
// (la cascada vive en el esquema del store).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListByBusiness(ctx context.Context, business, search, category string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
