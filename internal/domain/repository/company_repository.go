package repository

import (
	"context"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
//
// El almacén distingue dos alcances: el de año fiscal (fiscal_year_id del
// registro) y el plano (consulta por company_id sin filtrar año fiscal), que
// sirve de fallback para registros históricos.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByCompanyID busca por identificador de negocio en el alcance plano
	// (cualquier año fiscal). Devuelve (nil, nil) si no hay match.
	GetByCompanyID(ctx context.Context, companyID string) (*entity.Company, error)
	GetByCompanyIDInFiscalYear(ctx context.Context, fiscalYearID, companyID string) (*entity.Company, error)
	// LastSequence devuelve la secuencia más alta de los COMP-<year>-NNN ya
	// emitidos en el año fiscal (0 si no hay ninguno).
	LastSequence(ctx context.Context, fiscalYearID string, year int) (int, error)
	List(ctx context.Context, fiscalYearID string, limit, offset int) ([]*entity.Company, error)
	ExistsInFiscalYear(ctx context.Context, fiscalYearID string) (bool, error)
	ExistsAny(ctx context.Context) (bool, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}
