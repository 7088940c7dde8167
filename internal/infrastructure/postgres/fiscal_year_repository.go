package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que FiscalYearRepo implementa repository.FiscalYearRepository.
var _ repository.FiscalYearRepository = (*FiscalYearRepo)(nil)

// FiscalYearRepo implementación del puerto FiscalYearRepository sobre PostgreSQL.
type FiscalYearRepo struct {
	db DB
}

// NewFiscalYearRepository construye el adaptador de persistencia para años fiscales.
func NewFiscalYearRepository(db DB) *FiscalYearRepo {
	return &FiscalYearRepo{db: db}
}

// Create persiste un nuevo año fiscal.
func (r *FiscalYearRepo) Create(ctx context.Context, fy *entity.FiscalYear) error {
	query := `
		INSERT INTO fiscal_years (id, start_date, end_date, created_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, fy.ID, fy.StartDate, fy.EndDate, fy.CreatedBy, fy.Status, fy.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fiscal year: %w", err)
	}
	return nil
}

// GetByID obtiene un año fiscal por ID. Devuelve (nil, nil) si no existe.
func (r *FiscalYearRepo) GetByID(ctx context.Context, id string) (*entity.FiscalYear, error) {
	query := `SELECT id, start_date, end_date, created_by, status, created_at FROM fiscal_years WHERE id = $1`
	var fy entity.FiscalYear
	err := r.db.QueryRow(ctx, query, id).Scan(&fy.ID, &fy.StartDate, &fy.EndDate, &fy.CreatedBy, &fy.Status, &fy.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiscal year: %w", err)
	}
	return &fy, nil
}

// List devuelve los años fiscales en el orden por defecto de la tabla
// (sin ORDER BY: el escaneo de inferencia depende de "primer match gana").
func (r *FiscalYearRepo) List(ctx context.Context) ([]*entity.FiscalYear, error) {
	query := `SELECT id, start_date, end_date, created_by, status, created_at FROM fiscal_years`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fiscal years: %w", err)
	}
	defer rows.Close()

	var list []*entity.FiscalYear
	for rows.Next() {
		var fy entity.FiscalYear
		if err := rows.Scan(&fy.ID, &fy.StartDate, &fy.EndDate, &fy.CreatedBy, &fy.Status, &fy.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fiscal year: %w", err)
		}
		list = append(list, &fy)
	}
	return list, rows.Err()
}

// ExistsAny informa si hay al menos un año fiscal.
func (r *FiscalYearRepo) ExistsAny(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM fiscal_years)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists fiscal years: %w", err)
	}
	return exists, nil
}
