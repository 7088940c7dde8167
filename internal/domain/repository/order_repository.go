package repository

import (
	"context"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// OrderFilter filtros de listado de órdenes. Los campos vacíos no filtran.
type OrderFilter struct {
	CompanyID    string
	FiscalYearID string
	CustomerID   string
	DriverID     string
	Status       string
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// LastSequence devuelve la secuencia más alta de los ORD-<year>-NNNNN ya
	// emitidos en el año fiscal (0 si no hay ninguno).
	LastSequence(ctx context.Context, fiscalYearID string, year int) (int, error)
}
