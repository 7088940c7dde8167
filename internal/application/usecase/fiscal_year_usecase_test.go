package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
)

func TestFiscalYearCreate_DerivaIDDeLasFechas(t *testing.T) {
	uc := NewFiscalYearUseCase(&memFiscal{})

	out, err := uc.Create(context.Background(), "admin-1", dto.CreateFiscalYearRequest{
		StartDate: "2025-01-01",
		EndDate:   "2026-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025_2026", out.ID, "el ID es <año inicio>_<año fin>")
	assert.Equal(t, "active", out.Status)
	assert.Equal(t, "admin-1", out.CreatedBy)
}

func TestFiscalYearCreate_MismoAñoCalendario(t *testing.T) {
	uc := NewFiscalYearUseCase(&memFiscal{})

	out, err := uc.Create(context.Background(), "admin-1", dto.CreateFiscalYearRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025_2025", out.ID)
}

func TestFiscalYearCreate_FinAnteriorAlInicio(t *testing.T) {
	uc := NewFiscalYearUseCase(&memFiscal{})

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateFiscalYearRequest{
		StartDate: "2026-01-01",
		EndDate:   "2025-12-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFiscalYearCreate_FechaMalFormada(t *testing.T) {
	uc := NewFiscalYearUseCase(&memFiscal{})

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateFiscalYearRequest{
		StartDate: "01/01/2025",
		EndDate:   "2026-12-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFiscalYearCreate_Duplicado(t *testing.T) {
	uc := NewFiscalYearUseCase(fiscal2025())

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateFiscalYearRequest{
		StartDate: "2025-03-01",
		EndDate:   "2026-02-28",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"dos rangos distintos que derivan el mismo ID colisionan")
}

func TestFiscalYearList(t *testing.T) {
	uc := NewFiscalYearUseCase(fiscal2025())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2025_2026", out.Items[0].ID)
}
