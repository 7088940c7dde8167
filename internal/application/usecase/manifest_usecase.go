package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// ManifestPDFGenerator puerto de generación del manifiesto de entrega en PDF.
// La implementación vive en infrastructure/pdf.
type ManifestPDFGenerator interface {
	GenerateManifestPDF(ctx context.Context, order *entity.Order, company *entity.Company, driver, customer *entity.User) ([]byte, error)
}

// ManifestUseCase genera el manifiesto imprimible de una orden de entrega.
type ManifestUseCase struct {
	orders    repository.OrderRepository
	companies repository.CompanyRepository
	users     repository.UserRepository
	generator ManifestPDFGenerator
}

// NewManifestUseCase construye el caso de uso con sus puertos.
func NewManifestUseCase(orders repository.OrderRepository, companies repository.CompanyRepository, users repository.UserRepository, gen ManifestPDFGenerator) *ManifestUseCase {
	return &ManifestUseCase{orders: orders, companies: companies, users: users, generator: gen}
}

// Generate produce el PDF y el nombre de archivo sugerido. Admin es global;
// los demás roles solo acceden a órdenes de su empresa. Conductor y cliente
// son opcionales en el documento (pueden no resolver).
func (uc *ManifestUseCase) Generate(ctx context.Context, actor Actor, orderID string) ([]byte, string, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && order.CompanyID != actor.CompanyID {
		return nil, "", domain.ErrForbidden
	}

	company, err := uc.companies.GetByCompanyIDInFiscalYear(ctx, order.FiscalYearID, order.CompanyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		company, err = uc.companies.GetByCompanyID(ctx, order.CompanyID)
		if err != nil {
			return nil, "", err
		}
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	var driver, customer *entity.User
	if order.DriverID != "" {
		driver, _ = uc.users.GetByID(ctx, order.DriverID)
	}
	if order.CustomerID != "" {
		customer, _ = uc.users.GetByID(ctx, order.CustomerID)
	}

	pdf, err := uc.generator.GenerateManifestPDF(ctx, order, company, driver, customer)
	if err != nil {
		return nil, "", fmt.Errorf("generar manifiesto: %w", err)
	}
	return pdf, fmt.Sprintf("manifiesto_%s.pdf", order.OrderNumber), nil
}
