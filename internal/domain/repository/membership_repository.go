package repository

import (
	"context"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// MembershipRepository define el puerto de persistencia para los registros de
// membresía por rol (clave compuesta: año fiscal + rol + usuario).
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	Get(ctx context.Context, fiscalYearID, role, userID string) (*entity.Membership, error)
	ListByRole(ctx context.Context, fiscalYearID, role string, limit, offset int) ([]*entity.Membership, error)
	DeleteByUser(ctx context.Context, userID string) error
}
