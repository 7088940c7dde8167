package dto

import (
	"time"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// CreateCompanyRequest entrada para registrar una empresa dentro de un año
// fiscal. El CompanyID de negocio (COMP-<año>-<sec>) lo genera el sistema.
// Si City/Department vienen vacíos y PostalCode resuelve en el catálogo
// postal, se autocompletan.
type CreateCompanyRequest struct {
	FiscalYearID string               `json:"fiscal_year_id" validate:"required"`
	Name         string               `json:"name" validate:"required,min=1,max=200"`
	OwnerID      string               `json:"owner_id" validate:"omitempty"`
	Street       string               `json:"street"`
	City         string               `json:"city"`
	Department   string               `json:"department"`
	PostalCode   string               `json:"postal_code"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email" validate:"omitempty,email"`
	BankAccounts []entity.BankAccount `json:"bank_accounts"`
}

// UpdateCompanyRequest entrada de actualización merge: solo los campos
// presentes sobrescriben (los demás se preservan).
type UpdateCompanyRequest struct {
	Name         *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Street       *string               `json:"street"`
	City         *string               `json:"city"`
	Department   *string               `json:"department"`
	PostalCode   *string               `json:"postal_code"`
	Phone        *string               `json:"phone"`
	Email        *string               `json:"email" validate:"omitempty,email"`
	BankAccounts *[]entity.BankAccount `json:"bank_accounts"`
	Status       *string               `json:"status" validate:"omitempty,oneof=active suspended inactive"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string               `json:"id"`
	FiscalYearID string               `json:"fiscal_year_id"`
	CompanyID    string               `json:"company_id"`
	Name         string               `json:"name"`
	OwnerID      string               `json:"owner_id"`
	Address      entity.Address       `json:"address"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	BankAccounts []entity.BankAccount `json:"bank_accounts"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
