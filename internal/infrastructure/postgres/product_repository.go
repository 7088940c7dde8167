package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, company_id, name, category, price, tax_rate, unit, status, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.CompanyID, p.Name, p.Category, p.Price, p.TaxRate,
		p.Unit, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Category, &p.Price, &p.TaxRate,
		&p.Unit, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany devuelve productos de la empresa con paginación. Un companyID
// vacío no recorta (listado global para admin).
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		  FROM products
		 WHERE ($1 = '' OR company_id = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.Category, &p.Price, &p.TaxRate,
			&p.Unit, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		   SET name = $2, category = $3, price = $4, tax_rate = $5,
		       unit = $6, status = $7, updated_at = $8
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Price, p.TaxRate, p.Unit, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
