package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Asegura que OrderRepo implementa repository.OrderRepository.
var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas se guardan como JSONB (se congelan al crear la orden).
type OrderRepo struct {
	db DB
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, company_id, fiscal_year_id, order_number, customer_id, driver_id,
	status, pickup_address, delivery_address, items, net_total, tax_total, grand_total,
	notes, created_at, updated_at`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.db.Exec(ctx, query,
		o.ID, o.CompanyID, o.FiscalYearID, o.OrderNumber, o.CustomerID, o.DriverID,
		o.Status, o.PickupAddress, o.DeliveryAddress, items,
		o.NetTotal, o.TaxTotal, o.GrandTotal, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	var items []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CompanyID, &o.FiscalYearID, &o.OrderNumber, &o.CustomerID, &o.DriverID,
		&o.Status, &o.PickupAddress, &o.DeliveryAddress, &items,
		&o.NetTotal, &o.TaxTotal, &o.GrandTotal, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return &o, nil
}

// List devuelve órdenes según el filtro (los campos vacíos no filtran).
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		  FROM orders
		 WHERE ($1 = '' OR company_id = $1)
		   AND ($2 = '' OR fiscal_year_id = $2)
		   AND ($3 = '' OR customer_id = $3)
		   AND ($4 = '' OR driver_id = $4)
		   AND ($5 = '' OR status = $5)
		 ORDER BY created_at DESC
		 LIMIT $6 OFFSET $7`
	rows, err := r.db.Query(ctx, query, f.CompanyID, f.FiscalYearID, f.CustomerID, f.DriverID, f.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var items []byte
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.FiscalYearID, &o.OrderNumber, &o.CustomerID, &o.DriverID,
			&o.Status, &o.PickupAddress, &o.DeliveryAddress, &items,
			&o.NetTotal, &o.TaxTotal, &o.GrandTotal, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, fmt.Errorf("unmarshal order items: %w", err)
			}
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza el estado mutable de una orden (conductor, estado, notas).
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		   SET driver_id = $2, status = $3, notes = $4, updated_at = $5
		 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, o.ID, o.DriverID, o.Status, o.Notes, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// LastSequence devuelve la secuencia más alta de los ORD-<year>-NNNNN emitidos
// en el año fiscal (0 si no hay).
func (r *OrderRepo) LastSequence(ctx context.Context, fiscalYearID string, year int) (int, error) {
	query := `
		SELECT order_number FROM orders
		 WHERE fiscal_year_id = $1 AND order_number LIKE $2
		 ORDER BY order_number DESC
		 LIMIT 1`
	prefix := fmt.Sprintf("ORD-%d-%%", year)
	var last string
	err := r.db.QueryRow(ctx, query, fiscalYearID, prefix).Scan(&last)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("last order sequence: %w", err)
	}
	parts := strings.Split(last, "-")
	if len(parts) != 3 {
		return 0, nil
	}
	n, _ := strconv.Atoi(parts[2])
	return n, nil
}
