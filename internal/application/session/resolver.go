package session

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
	"github.com/tu-usuario/delivery-pro/pkg/logger"
)

// Resolver transforma un principal autenticado en un Workspace resuelto.
//
// Política de errores: cualquier fallo de consulta durante la inferencia, la
// materialización o el cálculo de readiness degrada a "dato ausente" y se
// registra; solo el fallo al leer (o crear) el perfil es terminal y devuelve
// domain.ErrBootstrap.
type Resolver struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	fiscal    repository.FiscalYearRepository
	log       *logger.Logger
}

// NewResolver construye el resolver con sus puertos de consulta.
func NewResolver(users repository.UserRepository, companies repository.CompanyRepository, fiscal repository.FiscalYearRepository, log *logger.Logger) *Resolver {
	return &Resolver{users: users, companies: companies, fiscal: fiscal, log: log}
}

// Principal es el registro emitido por el proveedor de identidad.
type Principal struct {
	ID    string
	Email string
	Name  string
}

// Resolve ejecuta la secuencia de bootstrap para el principal.
func (r *Resolver) Resolve(ctx context.Context, p Principal) (Workspace, error) {
	user, err := r.users.GetByID(ctx, p.ID)
	if err != nil {
		return emptyWorkspace(), fmt.Errorf("%w: %v", domain.ErrBootstrap, err)
	}

	// Perfil ausente: creación diferida con rol por defecto y fin de la
	// resolución. Solo ocurre cuando el proveedor de identidad entrega el
	// email (primera autenticación); un token vigente de un perfil ya
	// eliminado no trae email y no debe recrear un perfil vacío.
	if user == nil {
		if p.Email == "" {
			return emptyWorkspace(), fmt.Errorf("%w: el perfil del principal ya no existe", domain.ErrBootstrap)
		}
		user = defaultProfile(p)
		if err := r.users.Create(ctx, user); err != nil {
			return emptyWorkspace(), fmt.Errorf("%w: %v", domain.ErrBootstrap, err)
		}
		return Workspace{Role: entity.RoleDefault, Readiness: ReadyNo}, nil
	}

	role := user.Role
	if role == "" {
		role = entity.RoleDefault
	}
	companyID := user.CompanyID
	fiscalYear := user.CurrentFiscalYear

	// Inferencia de año fiscal: solo para no-admin con empresa asignada y sin año.
	if role != entity.RoleAdmin && companyID != "" && fiscalYear == "" {
		fiscalYear = r.inferFiscalYear(ctx, companyID)
		if fiscalYear != "" {
			// Backfill merge-write para que futuras resoluciones se salten el escaneo.
			// Idempotente: una segunda pasada ya no entra aquí (CurrentFiscalYear no vacío).
			if err := r.users.UpdateFiscalYear(ctx, user.ID, fiscalYear); err != nil {
				r.log.Warn().Err(err).Str("user_id", user.ID).Msg("backfill de año fiscal falló")
			}
		}
	}

	// Materialización de la empresa: alcance de año fiscal primero, plano como fallback.
	var company *entity.Company
	if role != entity.RoleAdmin && companyID != "" {
		company = r.materializeCompany(ctx, fiscalYear, companyID)
	}

	ready := ReadyNo
	if r.determineReadiness(ctx, role, companyID, fiscalYear) {
		ready = ReadyYes
	}

	return Workspace{
		Role:       role,
		CompanyID:  companyID,
		FiscalYear: fiscalYear,
		Company:    company,
		Readiness:  ready,
	}, nil
}

// inferFiscalYear busca el año fiscal de una empresa: primero el alcance plano
// (el registro trae su propio fiscal_year_id), después un escaneo por cada año
// fiscal donde el primer match gana. El orden del escaneo es el orden por
// defecto de la colección: si un company_id estuviera duplicado entre años el
// resultado es no determinista (la unicidad se garantiza al crear empresas).
func (r *Resolver) inferFiscalYear(ctx context.Context, companyID string) string {
	flat, err := r.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		r.log.Warn().Err(err).Str("company_id", companyID).Msg("consulta plana de empresa falló")
	} else if flat != nil && flat.FiscalYearID != "" {
		return flat.FiscalYearID
	}

	years, err := r.fiscal.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("listado de años fiscales falló")
		return ""
	}
	for _, fy := range years {
		c, err := r.companies.GetByCompanyIDInFiscalYear(ctx, fy.ID, companyID)
		if err != nil {
			r.log.Warn().Err(err).Str("fiscal_year", fy.ID).Msg("consulta de empresa por año fiscal falló")
			continue
		}
		if c != nil {
			return fy.ID
		}
	}
	return ""
}

// materializeCompany obtiene el registro de empresa: subcolección del año
// fiscal primero, colección plana como fallback. nil si no aparece en ninguna.
func (r *Resolver) materializeCompany(ctx context.Context, fiscalYear, companyID string) *entity.Company {
	if fiscalYear != "" {
		c, err := r.companies.GetByCompanyIDInFiscalYear(ctx, fiscalYear, companyID)
		if err != nil {
			r.log.Warn().Err(err).Str("company_id", companyID).Msg("materialización por año fiscal falló")
		} else if c != nil {
			return c
		}
	}
	c, err := r.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		r.log.Warn().Err(err).Str("company_id", companyID).Msg("materialización plana falló")
		return nil
	}
	return c
}

// determineReadiness calcula el flag de workspace operativo.
//   - admin: existe al menos un año fiscal Y al menos una empresa (alcance del
//     año fiscal del admin primero, plano como fallback; solo plano si no hay año).
//   - resto: empresa asignada (presencia, no validación del registro).
func (r *Resolver) determineReadiness(ctx context.Context, role, companyID, fiscalYear string) bool {
	if role != entity.RoleAdmin {
		return companyID != ""
	}

	hasFY, err := r.fiscal.ExistsAny(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("verificación de años fiscales falló")
		hasFY = false
	}

	hasCompany := false
	if fiscalYear != "" {
		hasCompany, err = r.companies.ExistsInFiscalYear(ctx, fiscalYear)
		if err != nil {
			r.log.Warn().Err(err).Str("fiscal_year", fiscalYear).Msg("verificación de empresas por año falló")
			hasCompany = false
		}
	}
	if !hasCompany {
		flat, err := r.companies.ExistsAny(ctx)
		if err != nil {
			r.log.Warn().Err(err).Msg("verificación plana de empresas falló")
			flat = false
		}
		hasCompany = flat
	}

	return hasFY && hasCompany
}

func defaultProfile(p Principal) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Role:      entity.RoleDefault,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
