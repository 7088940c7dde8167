package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// CreateOrderItem línea de una orden nueva (precio y tarifa se toman del producto).
type CreateOrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear una orden de entrega.
type CreateOrderRequest struct {
	CustomerID      string            `json:"customer_id" validate:"required"`
	PickupAddress   string            `json:"pickup_address" validate:"required"`
	DeliveryAddress string            `json:"delivery_address" validate:"required"`
	Items           []CreateOrderItem `json:"items" validate:"required,min=1"`
	Notes           string            `json:"notes"`
}

// AssignDriverRequest entrada para asignar conductor (pending → assigned).
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned in_transit delivered cancelled"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID              string             `json:"id"`
	CompanyID       string             `json:"company_id"`
	FiscalYearID    string             `json:"fiscal_year_id"`
	OrderNumber     string             `json:"order_number"`
	CustomerID      string             `json:"customer_id"`
	DriverID        string             `json:"driver_id"`
	Status          string             `json:"status"`
	PickupAddress   string             `json:"pickup_address"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []entity.OrderItem `json:"items"`
	NetTotal        decimal.Decimal    `json:"net_total"`
	TaxTotal        decimal.Decimal    `json:"tax_total"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
