package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que MembershipRepo implementa repository.MembershipRepository.
var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
// Clave primaria compuesta: (fiscal_year_id, role, user_id).
type MembershipRepo struct {
	db DB
}

// NewMembershipRepository construye el adaptador de persistencia para membresías.
func NewMembershipRepository(db DB) *MembershipRepo {
	return &MembershipRepo{db: db}
}

const membershipColumns = `user_id, fiscal_year_id, role, company_id,
	vehicle_type, vehicle_plate, license_number, address, city,
	contact_name, contact_phone, created_at, updated_at`

// Create persiste un registro de membresía.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		m.UserID, m.FiscalYearID, m.Role, m.CompanyID,
		m.VehicleType, m.VehiclePlate, m.LicenseNumber, m.Address, m.City,
		m.ContactName, m.ContactPhone, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// Get obtiene la membresía de un usuario en un año fiscal y rol.
func (r *MembershipRepo) Get(ctx context.Context, fiscalYearID, role, userID string) (*entity.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		  FROM memberships
		 WHERE fiscal_year_id = $1 AND role = $2 AND user_id = $3`
	var m entity.Membership
	err := r.db.QueryRow(ctx, query, fiscalYearID, role, userID).Scan(
		&m.UserID, &m.FiscalYearID, &m.Role, &m.CompanyID,
		&m.VehicleType, &m.VehiclePlate, &m.LicenseNumber, &m.Address, &m.City,
		&m.ContactName, &m.ContactPhone, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ListByRole lista las membresías de un rol dentro de un año fiscal.
func (r *MembershipRepo) ListByRole(ctx context.Context, fiscalYearID, role string, limit, offset int) ([]*entity.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		  FROM memberships
		 WHERE fiscal_year_id = $1 AND role = $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, fiscalYearID, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(
			&m.UserID, &m.FiscalYearID, &m.Role, &m.CompanyID,
			&m.VehicleType, &m.VehiclePlate, &m.LicenseNumber, &m.Address, &m.City,
			&m.ContactName, &m.ContactPhone, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByUser elimina todas las membresías de un usuario (baja de usuario).
func (r *MembershipRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM memberships WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete memberships: %w", err)
	}
	return nil
}
