package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que TxRunner implementa usecase.ProvisioningTxRunner.
var _ usecase.ProvisioningTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvisioning inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Las escrituras de perfil y membresía quedan
// confirmadas juntas o no quedan.
func (r *TxRunner) RunProvisioning(ctx context.Context, fn func(
	users repository.UserRepository,
	memberships repository.MembershipRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	membershipRepo := NewMembershipRepository(tx)

	if err := fn(userRepo, membershipRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
