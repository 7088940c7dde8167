package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de entrega.
const (
	OrderPending   = "pending"    // creada, sin conductor
	OrderAssigned  = "assigned"   // conductor asignado
	OrderInTransit = "in_transit" // en ruta
	OrderDelivered = "delivered"  // entregada
	OrderCancelled = "cancelled"  // cancelada
)

// orderTransitions define las transiciones legales de estado.
var orderTransitions = map[string][]string{
	OrderPending:   {OrderAssigned, OrderCancelled},
	OrderAssigned:  {OrderInTransit, OrderCancelled},
	OrderInTransit: {OrderDelivered, OrderCancelled},
}

// CanTransition informa si el cambio de estado from → to es legal.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem línea de una orden de entrega. Los montos se congelan al crear
// la orden (cambios posteriores del producto no afectan órdenes existentes).
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// Order representa una orden de entrega dentro de un año fiscal.
type Order struct {
	ID              string
	CompanyID       string
	FiscalYearID    string
	OrderNumber     string // ORD-<año>-<sec de 5 dígitos>
	CustomerID      string
	DriverID        string // vacío hasta asignar
	Status          string // ver constantes Order*
	PickupAddress   string
	DeliveryAddress string
	Items           []OrderItem
	NetTotal        decimal.Decimal
	TaxTotal        decimal.Decimal
	GrandTotal      decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BuildOrderNumber construye el número de orden: ORD-<año>-<sec>, secuencia a 5 dígitos.
func BuildOrderNumber(year, seq int) string {
	return fmt.Sprintf("ORD-%d-%05d", year, seq)
}

// Totals calcula neto, impuestos y total de las líneas.
func Totals(items []OrderItem) (net, tax, grand decimal.Decimal) {
	net, tax = decimal.Zero, decimal.Zero
	for _, it := range items {
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		net = net.Add(line)
		tax = tax.Add(line.Mul(it.TaxRate))
	}
	return net, tax, net.Add(tax)
}
