package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
	"github.com/tu-usuario/delivery-pro/pkg/postal"
)

// CompanyUseCase aplica reglas de negocio para empresas: generación del
// identificador secuencial por año fiscal, autocompletado postal y merge-update.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	fiscal    repository.FiscalYearRepository
	postal    *postal.Catalogue
}

// NewCompanyUseCase construye el caso de uso con sus puertos.
func NewCompanyUseCase(companies repository.CompanyRepository, fiscal repository.FiscalYearRepository, cat *postal.Catalogue) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, fiscal: fiscal, postal: cat}
}

// Create registra una empresa dentro de un año fiscal. Genera el CompanyID
// COMP-<año>-<sec> (max existente + 1, 001 si no hay) y verifica que no esté
// tomado en ningún año fiscal: un company_id duplicado entre años haría no
// determinista la inferencia del bootstrap.
func (uc *CompanyUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	fy, err := uc.fiscal.GetByID(ctx, in.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, domain.ErrNotFound
	}

	year := fy.StartDate.Year()
	last, err := uc.companies.LastSequence(ctx, fy.ID, year)
	if err != nil {
		return nil, err
	}
	companyID := entity.BuildCompanyID(year, last+1)

	taken, err := uc.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, domain.ErrDuplicate
	}

	addr := entity.Address{
		Street:     in.Street,
		City:       in.City,
		Department: in.Department,
		PostalCode: in.PostalCode,
	}
	// Autocompletado: el código postal resuelve municipio y departamento si faltan.
	if addr.PostalCode != "" && (addr.City == "" || addr.Department == "") {
		if place, ok := uc.postal.Lookup(addr.PostalCode); ok {
			if addr.City == "" {
				addr.City = place.City
			}
			if addr.Department == "" {
				addr.Department = place.Department
			}
		}
	}

	owner := in.OwnerID
	if owner == "" {
		owner = ownerID
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		FiscalYearID: fy.ID,
		CompanyID:    companyID,
		Name:         in.Name,
		OwnerID:      owner,
		Address:      addr,
		Phone:        in.Phone,
		Email:        in.Email,
		BankAccounts: in.BankAccounts,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista empresas; fiscalYearID vacío lista el alcance plano (todas).
func (uc *CompanyUseCase) List(ctx context.Context, fiscalYearID string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx, fiscalYearID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica una actualización merge: solo los campos presentes del request
// sobrescriben el registro; el resto se preserva.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Street != nil {
		company.Address.Street = *in.Street
	}
	if in.City != nil {
		company.Address.City = *in.City
	}
	if in.Department != nil {
		company.Address.Department = *in.Department
	}
	if in.PostalCode != nil {
		company.Address.PostalCode = *in.PostalCode
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.BankAccounts != nil {
		company.BankAccounts = *in.BankAccounts
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()

	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa (acción explícita de admin).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.companies.Delete(ctx, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		FiscalYearID: c.FiscalYearID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		OwnerID:      c.OwnerID,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		BankAccounts: c.BankAccounts,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
