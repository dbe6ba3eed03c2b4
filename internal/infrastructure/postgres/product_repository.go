package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category, unit, opening_stock, low_stock_level, photo_path, business, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Unit,
		product.OpeningStock, product.LowStockLevel, product.PhotoPath,
		product.Business, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category, unit, opening_stock, low_stock_level, photo_path, business, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Unit, &p.OpeningStock,
		&p.LowStockLevel, &p.PhotoPath, &p.Business, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos editables de un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, unit = $4, opening_stock = $5, low_stock_level = $6, photo_path = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Unit,
		product.OpeningStock, product.LowStockLevel, product.PhotoPath, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByBusiness lista los productos de un negocio; search filtra por id,
// nombre, categoría o unidad y category por categoría (vacío = sin filtro).
func (r *ProductRepo) ListByBusiness(ctx context.Context, business, search, category string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, unit, opening_stock, low_stock_level, photo_path, business, created_at, updated_at
		FROM products WHERE business = $1`
	args := []any{business}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (id::TEXT ILIKE $%d OR name ILIKE $%d OR category ILIKE $%d OR unit ILIKE $%d)", len(args), len(args), len(args), len(args))
	}
	if category != "" {
		args = append(args, "%"+category+"%")
		query += fmt.Sprintf(" AND category ILIKE $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Unit, &p.OpeningStock,
			&p.LowStockLevel, &p.PhotoPath, &p.Business, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID; la cascada del esquema elimina sus
// eventos IN/OUT y los lotes de vencimiento.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
