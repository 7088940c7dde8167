package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

func orderFixture() (*memOrders, *memProducts, *memUsers, *OrderUseCase) {
	orders := newMemOrders()
	products := newMemProducts()
	users := newMemUsers()

	products.byID["p1"] = &entity.Product{
		ID: "p1", CompanyID: "COMP-2025-001", Name: "Arroz 500g",
		Category: entity.CategoryAlimentos,
		Price:    decimal.NewFromInt(5000), TaxRate: decimal.NewFromFloat(0.05),
		Status: "active",
	}
	products.byID["p2"] = &entity.Product{
		ID: "p2", CompanyID: "COMP-2025-001", Name: "Televisor",
		Category: entity.CategoryGeneral,
		Price:    decimal.NewFromInt(1000000), TaxRate: decimal.NewFromFloat(0.19),
		Status: "active",
	}
	users.byID["d1"] = &entity.User{ID: "d1", Role: entity.RoleDriver, Status: "active"}

	return orders, products, users, NewOrderUseCase(orders, products, users)
}

func operadorActor() Actor {
	return Actor{UserID: "op1", CompanyID: "COMP-2025-001", Role: entity.RoleOperator}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación: totales congelados y numeración
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CongelaPreciosYCalculaTotales(t *testing.T) {
	_, products, _, uc := orderFixture()

	out, err := uc.Create(context.Background(), operadorActor(), "2025_2026", dto.CreateOrderRequest{
		CustomerID:      "cust1",
		PickupAddress:   "Bodega Norte",
		DeliveryAddress: "Cra 7 # 12-34",
		Items: []dto.CreateOrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-2025-00001", out.OrderNumber)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.True(t, decimal.NewFromInt(1010000).Equal(out.NetTotal), "neto: %s", out.NetTotal)
	assert.True(t, decimal.NewFromInt(190500).Equal(out.TaxTotal), "impuestos: %s", out.TaxTotal)
	assert.True(t, decimal.NewFromInt(1200500).Equal(out.GrandTotal), "total: %s", out.GrandTotal)

	// Un cambio posterior de precio no afecta la orden ya creada.
	products.byID["p1"].Price = decimal.NewFromInt(9999)
	assert.True(t, decimal.NewFromInt(5000).Equal(out.Items[0].UnitPrice),
		"el precio de la línea quedó congelado al crear")
}

func TestOrderCreate_SecuenciaIncrementa(t *testing.T) {
	_, _, _, uc := orderFixture()

	req := dto.CreateOrderRequest{
		CustomerID: "cust1", PickupAddress: "A", DeliveryAddress: "B",
		Items: []dto.CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	}
	first, err := uc.Create(context.Background(), operadorActor(), "2025_2026", req)
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), operadorActor(), "2025_2026", req)
	require.NoError(t, err)

	assert.Equal(t, "ORD-2025-00001", first.OrderNumber)
	assert.Equal(t, "ORD-2025-00002", second.OrderNumber)
}

func TestOrderCreate_ProductoDeOtraEmpresa(t *testing.T) {
	_, products, _, uc := orderFixture()
	products.byID["ajeno"] = &entity.Product{
		ID: "ajeno", CompanyID: "COMP-2025-002", Name: "Ajeno",
		Price: decimal.NewFromInt(100), Status: "active",
	}

	_, err := uc.Create(context.Background(), operadorActor(), "2025_2026", dto.CreateOrderRequest{
		CustomerID: "cust1", PickupAddress: "A", DeliveryAddress: "B",
		Items: []dto.CreateOrderItem{{ProductID: "ajeno", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto de otra empresa no debe ser visible en la orden")
}

func TestOrderCreate_ProductoInactivo(t *testing.T) {
	_, products, _, uc := orderFixture()
	products.byID["p1"].Status = "inactive"

	_, err := uc.Create(context.Background(), operadorActor(), "2025_2026", dto.CreateOrderRequest{
		CustomerID: "cust1", PickupAddress: "A", DeliveryAddress: "B",
		Items: []dto.CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación y transiciones
// ──────────────────────────────────────────────────────────────────────────────

func createTestOrder(t *testing.T, uc *OrderUseCase) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), operadorActor(), "2025_2026", dto.CreateOrderRequest{
		CustomerID: "cust1", PickupAddress: "A", DeliveryAddress: "B",
		Items: []dto.CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	return out
}

func TestAssignDriver_PendienteAAsignada(t *testing.T) {
	_, _, _, uc := orderFixture()
	order := createTestOrder(t, uc)

	out, err := uc.AssignDriver(context.Background(), operadorActor(), order.ID, dto.AssignDriverRequest{DriverID: "d1"})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderAssigned, out.Status)
	assert.Equal(t, "d1", out.DriverID)
}

func TestAssignDriver_UsuarioQueNoEsConductor(t *testing.T) {
	_, _, users, uc := orderFixture()
	users.byID["op2"] = &entity.User{ID: "op2", Role: entity.RoleOperator}
	order := createTestOrder(t, uc)

	_, err := uc.AssignDriver(context.Background(), operadorActor(), order.ID, dto.AssignDriverRequest{DriverID: "op2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_TransicionIlegal(t *testing.T) {
	_, _, _, uc := orderFixture()
	order := createTestOrder(t, uc)

	_, err := uc.UpdateStatus(context.Background(), operadorActor(), order.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"pending → delivered salta estados y debe rechazarse")
}

func TestUpdateStatus_CicloCompleto(t *testing.T) {
	_, _, _, uc := orderFixture()
	order := createTestOrder(t, uc)
	actor := operadorActor()
	ctx := context.Background()

	_, err := uc.AssignDriver(ctx, actor, order.ID, dto.AssignDriverRequest{DriverID: "d1"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(ctx, actor, order.ID, entity.OrderInTransit)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInTransit, out.Status)

	out, err = uc.UpdateStatus(ctx, actor, order.ID, entity.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, out.Status)

	// Estado terminal: nada más es legal.
	_, err = uc.UpdateStatus(ctx, actor, order.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibilidad_ConductorSoloVeSusOrdenes(t *testing.T) {
	_, _, _, uc := orderFixture()
	order := createTestOrder(t, uc)
	ctx := context.Background()

	_, err := uc.AssignDriver(ctx, operadorActor(), order.ID, dto.AssignDriverRequest{DriverID: "d1"})
	require.NoError(t, err)

	asignado := Actor{UserID: "d1", CompanyID: "COMP-2025-001", Role: entity.RoleDriver}
	out, err := uc.GetByID(ctx, asignado, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, out.ID)

	otro := Actor{UserID: "d2", CompanyID: "COMP-2025-001", Role: entity.RoleDriver}
	_, err = uc.GetByID(ctx, otro, order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un conductor no asignado no ve la orden")
}

func TestVisibilidad_OtraEmpresaProhibida(t *testing.T) {
	_, _, _, uc := orderFixture()
	order := createTestOrder(t, uc)

	ajeno := Actor{UserID: "x", CompanyID: "COMP-2025-099", Role: entity.RoleOperator}
	_, err := uc.GetByID(context.Background(), ajeno, order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_FiltraPorRol(t *testing.T) {
	_, _, _, uc := orderFixture()
	ctx := context.Background()
	first := createTestOrder(t, uc)
	createTestOrder(t, uc)

	_, err := uc.AssignDriver(ctx, operadorActor(), first.ID, dto.AssignDriverRequest{DriverID: "d1"})
	require.NoError(t, err)

	operador, err := uc.List(ctx, operadorActor(), "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, operador.Items, 2, "el operador ve todas las órdenes de la empresa")

	conductor, err := uc.List(ctx, Actor{UserID: "d1", CompanyID: "COMP-2025-001", Role: entity.RoleDriver}, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, conductor.Items, 1, "el conductor solo ve sus asignadas")
	assert.Equal(t, first.ID, conductor.Items[0].ID)

	cliente, err := uc.List(ctx, Actor{UserID: "cust1", CompanyID: "COMP-2025-001", Role: entity.RoleCustomer}, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, cliente.Items, 2, "el cliente ve las órdenes donde es destinatario")
}

func TestVisibilidad_AdminSinEmpresaEsGlobal(t *testing.T) {
	orders, _, _, uc := orderFixture()
	ctx := context.Background()
	order := createTestOrder(t, uc)
	orders.byID["o-ajena"] = &entity.Order{
		ID: "o-ajena", CompanyID: "COMP-2025-002", FiscalYearID: "2025_2026",
		OrderNumber: "ORD-2025-00099", Status: entity.OrderPending, CustomerID: "cust9",
	}

	admin := Actor{UserID: "adm1", CompanyID: "", Role: entity.RoleAdmin}

	got, err := uc.GetByID(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	list, err := uc.List(ctx, admin, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "admin ve las órdenes de todas las empresas")
}
