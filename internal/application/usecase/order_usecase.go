package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Actor identifica quién ejecuta la operación (claims del token).
type Actor struct {
	UserID    string
	CompanyID string
	Role      string
}

// OrderUseCase órdenes de entrega: creación con totales congelados,
// asignación de conductor y transiciones de estado legales.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

// NewOrderUseCase construye el caso de uso con sus puertos.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, users: users}
}

// Create crea una orden: toma precio y tarifa del producto en el momento de la
// creación, calcula totales con decimales y genera ORD-<año>-<sec>.
func (uc *OrderUseCase) Create(ctx context.Context, actor Actor, fiscalYearID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if actor.CompanyID == "" || fiscalYearID == "" {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != actor.CompanyID {
			return nil, domain.ErrNotFound
		}
		if product.Status != "active" {
			return nil, domain.ErrConflict
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
			TaxRate:   product.TaxRate,
		})
	}

	net, tax, grand := entity.Totals(items)

	year := fiscalYearStart(fiscalYearID)
	last, err := uc.orders.LastSequence(ctx, fiscalYearID, year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		CompanyID:       actor.CompanyID,
		FiscalYearID:    fiscalYearID,
		OrderNumber:     entity.BuildOrderNumber(year, last+1),
		CustomerID:      in.CustomerID,
		Status:          entity.OrderPending,
		PickupAddress:   in.PickupAddress,
		DeliveryAddress: in.DeliveryAddress,
		Items:           items,
		NetTotal:        net,
		TaxTotal:        tax,
		GrandTotal:      grand,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden visible para el actor (empresa, y para conductor/
// cliente además propiedad de la orden).
func (uc *OrderUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.OrderResponse, error) {
	order, err := uc.visibleOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes según el rol: conductor ve sus asignadas, cliente las
// suyas, operador todas las de su empresa, admin todas las empresas (el rol
// admin es global y puede no llevar empresa asignada).
func (uc *OrderUseCase) List(ctx context.Context, actor Actor, status string, limit, offset int) (*dto.OrderListResponse, error) {
	filter := repository.OrderFilter{Status: status}
	switch actor.Role {
	case entity.RoleAdmin:
		// sin recorte por empresa
	case entity.RoleDriver:
		filter.CompanyID = actor.CompanyID
		filter.DriverID = actor.UserID
	case entity.RoleCustomer:
		filter.CompanyID = actor.CompanyID
		filter.CustomerID = actor.UserID
	default:
		filter.CompanyID = actor.CompanyID
	}
	list, err := uc.orders.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AssignDriver asigna conductor a una orden pendiente (pending → assigned).
// Valida que el usuario exista y tenga rol driver.
func (uc *OrderUseCase) AssignDriver(ctx context.Context, actor Actor, orderID string, in dto.AssignDriverRequest) (*dto.OrderResponse, error) {
	order, err := uc.visibleOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, entity.OrderAssigned) {
		return nil, domain.ErrInvalidTransition
	}

	driver, err := uc.users.GetByID(ctx, in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.Role != entity.RoleDriver {
		return nil, domain.ErrInvalidInput
	}

	order.DriverID = driver.ID
	order.Status = entity.OrderAssigned
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus aplica una transición de estado legal. Un conductor solo puede
// mover sus propias órdenes.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor Actor, orderID, status string) (*dto.OrderResponse, error) {
	order, err := uc.visibleOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// visibleOrder aplica el alcance de visibilidad del actor sobre una orden.
// Admin es global y no se recorta por empresa.
func (uc *OrderUseCase) visibleOrder(ctx context.Context, actor Actor, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if actor.Role != entity.RoleAdmin && order.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	switch actor.Role {
	case entity.RoleDriver:
		if order.DriverID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleCustomer:
		if order.CustomerID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	}
	return order, nil
}

// fiscalYearStart extrae el año de inicio de un ID "<inicio>_<fin>".
// Cae al año actual si el formato no coincide.
func fiscalYearStart(fiscalYearID string) int {
	parts := strings.SplitN(fiscalYearID, "_", 2)
	if n, err := strconv.Atoi(parts[0]); err == nil && n > 0 {
		return n
	}
	return time.Now().Year()
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		CompanyID:       o.CompanyID,
		FiscalYearID:    o.FiscalYearID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		DriverID:        o.DriverID,
		Status:          o.Status,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		Items:           o.Items,
		NetTotal:        o.NetTotal,
		TaxTotal:        o.TaxTotal,
		GrandTotal:      o.GrandTotal,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
