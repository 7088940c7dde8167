package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCompanyID(t *testing.T) {
	assert.Equal(t, "COMP-2025-001", BuildCompanyID(2025, 1))
	assert.Equal(t, "COMP-2025-008", BuildCompanyID(2025, 8))
	assert.Equal(t, "COMP-2026-120", BuildCompanyID(2026, 120))
	// La secuencia no se trunca al superar los 3 dígitos.
	assert.Equal(t, "COMP-2025-1000", BuildCompanyID(2025, 1000))
}

func TestCompanySequence(t *testing.T) {
	assert.Equal(t, 1, CompanySequence("COMP-2025-001"))
	assert.Equal(t, 42, CompanySequence("COMP-2025-042"))
	assert.Equal(t, 1000, CompanySequence("COMP-2025-1000"))

	// Formatos que no son identificadores generados
	assert.Equal(t, 0, CompanySequence(""))
	assert.Equal(t, 0, CompanySequence("COMP-2025"))
	assert.Equal(t, 0, CompanySequence("ORD-2025-001"))
	assert.Equal(t, 0, CompanySequence("COMP-2025-abc"))
}

func TestFiscalYearID(t *testing.T) {
	assert.Equal(t, "2025_2026", FiscalYearID(2025, 2026))
	assert.Equal(t, "2024_2024", FiscalYearID(2024, 2024))
}
