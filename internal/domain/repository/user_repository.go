package repository

import (
	"context"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdateFiscalYear es el merge-write del backfill de año fiscal: solo toca
	// current_fiscal_year y updated_at, preservando el resto de campos.
	UpdateFiscalYear(ctx context.Context, userID, fiscalYearID string) error
	List(ctx context.Context, role, fiscalYearID string, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
