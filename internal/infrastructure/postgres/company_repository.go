package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Las cuentas bancarias se guardan como JSONB.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, fiscal_year_id, company_id, name, owner_id,
	street, city, department, postal_code, phone, email, bank_accounts, status,
	created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	accounts, err := json.Marshal(c.BankAccounts)
	if err != nil {
		return fmt.Errorf("marshal bank accounts: %w", err)
	}
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.db.Exec(ctx, query,
		c.ID, c.FiscalYearID, c.CompanyID, c.Name, c.OwnerID,
		c.Address.Street, c.Address.City, c.Address.Department, c.Address.PostalCode,
		c.Phone, c.Email, accounts, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID de registro.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByCompanyID busca por identificador de negocio en el alcance plano
// (sin filtrar año fiscal). Devuelve (nil, nil) si no hay match.
func (r *CompanyRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE company_id = $1 LIMIT 1`, companyID)
}

// GetByCompanyIDInFiscalYear busca por identificador de negocio dentro del año fiscal.
func (r *CompanyRepo) GetByCompanyIDInFiscalYear(ctx context.Context, fiscalYearID, companyID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE fiscal_year_id = $1 AND company_id = $2`
	return r.getOne(ctx, query, fiscalYearID, companyID)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	var accounts []byte
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.FiscalYearID, &c.CompanyID, &c.Name, &c.OwnerID,
		&c.Address.Street, &c.Address.City, &c.Address.Department, &c.Address.PostalCode,
		&c.Phone, &c.Email, &accounts, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	if len(accounts) > 0 {
		if err := json.Unmarshal(accounts, &c.BankAccounts); err != nil {
			return nil, fmt.Errorf("unmarshal bank accounts: %w", err)
		}
	}
	return &c, nil
}

// LastSequence devuelve la secuencia más alta de los COMP-<year>-NNN emitidos
// en el año fiscal (0 si no hay). Usa orden descendente + límite sobre el
// prefijo del identificador generado.
func (r *CompanyRepo) LastSequence(ctx context.Context, fiscalYearID string, year int) (int, error) {
	query := `
		SELECT company_id FROM companies
		 WHERE fiscal_year_id = $1 AND company_id LIKE $2
		 ORDER BY company_id DESC
		 LIMIT 1`
	prefix := fmt.Sprintf("COMP-%d-%%", year)
	var last string
	err := r.db.QueryRow(ctx, query, fiscalYearID, prefix).Scan(&last)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("last company sequence: %w", err)
	}
	return entity.CompanySequence(last), nil
}

// List devuelve empresas con paginación; fiscalYearID vacío no filtra (alcance plano).
func (r *CompanyRepo) List(ctx context.Context, fiscalYearID string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		  FROM companies
		 WHERE ($1 = '' OR fiscal_year_id = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, fiscalYearID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		var accounts []byte
		if err := rows.Scan(
			&c.ID, &c.FiscalYearID, &c.CompanyID, &c.Name, &c.OwnerID,
			&c.Address.Street, &c.Address.City, &c.Address.Department, &c.Address.PostalCode,
			&c.Phone, &c.Email, &accounts, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		if len(accounts) > 0 {
			if err := json.Unmarshal(accounts, &c.BankAccounts); err != nil {
				return nil, fmt.Errorf("unmarshal bank accounts: %w", err)
			}
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ExistsInFiscalYear informa si hay al menos una empresa en el año fiscal.
func (r *CompanyRepo) ExistsInFiscalYear(ctx context.Context, fiscalYearID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE fiscal_year_id = $1)`, fiscalYearID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists companies in fiscal year: %w", err)
	}
	return exists, nil
}

// ExistsAny informa si hay al menos una empresa en cualquier alcance.
func (r *CompanyRepo) ExistsAny(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists companies: %w", err)
	}
	return exists, nil
}

// Update actualiza una empresa existente (el merge de campos se hace en el use case).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	accounts, err := json.Marshal(c.BankAccounts)
	if err != nil {
		return fmt.Errorf("marshal bank accounts: %w", err)
	}
	query := `
		UPDATE companies
		   SET name = $2, owner_id = $3, street = $4, city = $5, department = $6,
		       postal_code = $7, phone = $8, email = $9, bank_accounts = $10,
		       status = $11, updated_at = $12
		 WHERE id = $1`
	_, err = r.db.Exec(ctx, query,
		c.ID, c.Name, c.OwnerID,
		c.Address.Street, c.Address.City, c.Address.Department, c.Address.PostalCode,
		c.Phone, c.Email, accounts, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID de registro.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
