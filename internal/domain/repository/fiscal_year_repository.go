package repository

import (
	"context"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// FiscalYearRepository define el puerto de persistencia para FiscalYear (DIP).
type FiscalYearRepository interface {
	Create(ctx context.Context, fy *entity.FiscalYear) error
	GetByID(ctx context.Context, id string) (*entity.FiscalYear, error)
	// List devuelve todos los años fiscales en el orden por defecto de la
	// colección (sin ORDER BY explícito: el escaneo de inferencia del bootstrap
	// depende de "primer match gana" sobre ese orden).
	List(ctx context.Context) ([]*entity.FiscalYear, error)
	ExistsAny(ctx context.Context) (bool, error)
}
