package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto. TaxRate no se
// acepta del cliente: se deriva de la categoría.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Unit     string          `json:"unit"`
}

// UpdateProductRequest entrada de actualización (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Unit     *string          `json:"unit"`
	Status   *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Unit      string          `json:"unit"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
