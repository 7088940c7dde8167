package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto con tratamiento tributario propio (IVA Colombia).
const (
	CategoryAlimentos    = "alimentos"
	CategoryMedicamentos = "medicamentos"
	CategoryLibros       = "libros"
	CategoryGeneral      = "general"
)

var (
	taxRateGeneral  = decimal.NewFromFloat(0.19)
	taxRateReducida = decimal.NewFromFloat(0.05)
	taxRateExenta   = decimal.Zero
)

// TaxRateForCategory deriva la tarifa de IVA según la categoría:
// alimentos 5%, medicamentos y libros exentos, resto tarifa general 19%.
func TaxRateForCategory(category string) decimal.Decimal {
	switch category {
	case CategoryAlimentos:
		return taxRateReducida
	case CategoryMedicamentos, CategoryLibros:
		return taxRateExenta
	default:
		return taxRateGeneral
	}
}

// Product representa un producto transportable registrado por una empresa.
// TaxRate se deriva de Category al crear; no se acepta del cliente.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	Category  string
	Price     decimal.Decimal
	TaxRate   decimal.Decimal // 0, 0.05, 0.19
	Unit      string          // unidad, kg, caja
	Status    string          // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
