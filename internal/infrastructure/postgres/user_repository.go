package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Acepta el pool o una transacción (ver TxRunner).
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password_hash, name, role, company_id, current_fiscal_year, status, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role,
		user.CompanyID, user.CurrentFiscalYear, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.CompanyID, &u.CurrentFiscalYear, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		   SET email = $2, name = $3, role = $4, company_id = $5,
		       current_fiscal_year = $6, status = $7, updated_at = $8
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.Role, user.CompanyID,
		user.CurrentFiscalYear, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateFiscalYear merge-write del backfill: solo current_fiscal_year y
// updated_at, preservando el resto de campos del perfil.
func (r *UserRepo) UpdateFiscalYear(ctx context.Context, userID, fiscalYearID string) error {
	query := `UPDATE users SET current_fiscal_year = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, fiscalYearID, time.Now())
	if err != nil {
		return fmt.Errorf("backfill fiscal year: %w", err)
	}
	return nil
}

// List devuelve usuarios con filtros opcionales de rol y año fiscal.
func (r *UserRepo) List(ctx context.Context, role, fiscalYearID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		  FROM users
		 WHERE ($1 = '' OR role = $1)
		   AND ($2 = '' OR current_fiscal_year = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, role, fiscalYearID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
			&u.CompanyID, &u.CurrentFiscalYear, &u.Status,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
