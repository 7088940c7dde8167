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

func productOperador(companyID string) Actor {
	return Actor{UserID: "op1", CompanyID: companyID, Role: entity.RoleOperator}
}

func TestProductCreate_DerivaTarifaDeLaCategoria(t *testing.T) {
	uc := NewProductUseCase(newMemProducts())

	out, err := uc.Create(context.Background(), productOperador("COMP-2025-001"), dto.CreateProductRequest{
		Name:     "Arroz 500g",
		Category: entity.CategoryAlimentos,
		Price:    decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(0.05).Equal(out.TaxRate),
		"alimentos lleva tarifa reducida, no la que mande el cliente")
	assert.Equal(t, "active", out.Status)
	assert.Equal(t, "unidad", out.Unit, "unidad por defecto si no se indica")
}

func TestProductCreate_SinEmpresaEnSesion(t *testing.T) {
	uc := NewProductUseCase(newMemProducts())

	_, err := uc.Create(context.Background(), productOperador(""), dto.CreateProductRequest{
		Name: "X", Category: entity.CategoryGeneral, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_AdminTambienNecesitaEmpresa(t *testing.T) {
	uc := NewProductUseCase(newMemProducts())

	admin := Actor{UserID: "adm1", CompanyID: "", Role: entity.RoleAdmin}
	_, err := uc.Create(context.Background(), admin, dto.CreateProductRequest{
		Name: "X", Category: entity.CategoryGeneral, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"todo producto pertenece a una empresa; admin sin empresa no crea")
}

func TestProductUpdate_CambioDeCategoriaRederiva(t *testing.T) {
	products := newMemProducts()
	uc := NewProductUseCase(products)
	operador := productOperador("COMP-2025-001")

	out, err := uc.Create(context.Background(), operador, dto.CreateProductRequest{
		Name:     "Acetaminofén",
		Category: entity.CategoryGeneral,
		Price:    decimal.NewFromInt(8000),
	})
	require.NoError(t, err)
	require.True(t, decimal.NewFromFloat(0.19).Equal(out.TaxRate))

	categoria := entity.CategoryMedicamentos
	updated, err := uc.Update(context.Background(), operador, out.ID, dto.UpdateProductRequest{
		Category: &categoria,
	})
	require.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(updated.TaxRate),
		"medicamentos está exento; la tarifa se re-deriva al cambiar la categoría")
}

func TestProduct_AccesoDeOtraEmpresa(t *testing.T) {
	products := newMemProducts()
	products.byID["p1"] = &entity.Product{ID: "p1", CompanyID: "COMP-2025-001", Name: "Propio"}
	uc := NewProductUseCase(products)
	ctx := context.Background()
	ajeno := productOperador("COMP-2025-002")

	_, err := uc.GetByID(ctx, ajeno, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	nombre := "Renombrado"
	_, err = uc.Update(ctx, ajeno, "p1", dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Delete(ctx, ajeno, "p1"), domain.ErrForbidden)
}

func TestProduct_AdminEsGlobal(t *testing.T) {
	products := newMemProducts()
	products.byID["p1"] = &entity.Product{ID: "p1", CompanyID: "COMP-2025-001", Name: "Uno"}
	products.byID["p2"] = &entity.Product{ID: "p2", CompanyID: "COMP-2025-002", Name: "Dos"}
	uc := NewProductUseCase(products)
	ctx := context.Background()

	// Un admin no tiene empresa asignada y aun así administra el catálogo
	// completo.
	admin := Actor{UserID: "adm1", CompanyID: "", Role: entity.RoleAdmin}

	got, err := uc.GetByID(ctx, admin, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Uno", got.Name)

	list, err := uc.List(ctx, admin, 50, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "admin lista productos de todas las empresas")

	nombre := "Uno corregido"
	updated, err := uc.Update(ctx, admin, "p1", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Uno corregido", updated.Name)

	require.NoError(t, uc.Delete(ctx, admin, "p2"))
	gone, err := uc.GetByID(ctx, admin, "p2")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProductList_RecortaPorEmpresaDelActor(t *testing.T) {
	products := newMemProducts()
	products.byID["p1"] = &entity.Product{ID: "p1", CompanyID: "COMP-2025-001", Name: "Uno"}
	products.byID["p2"] = &entity.Product{ID: "p2", CompanyID: "COMP-2025-002", Name: "Dos"}
	uc := NewProductUseCase(products)

	list, err := uc.List(context.Background(), productOperador("COMP-2025-001"), 50, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Uno", list.Items[0].Name)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := NewProductUseCase(newMemProducts())
	assert.ErrorIs(t, uc.Delete(context.Background(), productOperador("COMP-2025-001"), "no-existe"), domain.ErrNotFound)
}
