package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// ProductUseCase registro de productos. La tarifa de IVA se deriva de la
// categoría al crear y se re-deriva si la categoría cambia; nunca se acepta
// del cliente.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto para la empresa del actor. Todo producto
// pertenece a una empresa: también un admin necesita empresa asignada para
// crear.
func (uc *ProductUseCase) Create(ctx context.Context, actor Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	companyID := actor.CompanyID
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := in.Unit
	if unit == "" {
		unit = "unidad"
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		TaxRate:   entity.TaxRateForCategory(in.Category),
		Unit:      unit,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto verificando que pertenece a la empresa del
// actor. Admin es global y no se recorta.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if actor.Role != entity.RoleAdmin && product.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación: la empresa del actor, o todas las
// empresas para admin.
func (uc *ProductUseCase) List(ctx context.Context, actor Actor, limit, offset int) (*dto.ProductListResponse, error) {
	companyID := actor.CompanyID
	if actor.Role == entity.RoleAdmin {
		companyID = ""
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto; si cambia la categoría, re-deriva la tarifa.
func (uc *ProductUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && product.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil && *in.Category != product.Category {
		product.Category = *in.Category
		product.TaxRate = entity.TaxRateForCategory(*in.Category)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto de la empresa del actor (admin: cualquiera).
func (uc *ProductUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && product.CompanyID != actor.CompanyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		TaxRate:   p.TaxRate,
		Unit:      p.Unit,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
