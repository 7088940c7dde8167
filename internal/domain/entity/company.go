package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BankAccount cuenta bancaria asociada a una empresa.
type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"` // ahorros, corriente
}

// Address dirección postal de una empresa.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Department string `json:"department"`
	PostalCode string `json:"postal_code"`
}

// Company representa una empresa registrada dentro de un año fiscal.
// FiscalYearID vacío indica un registro en el alcance plano (ruta de fallback
// para datos históricos sin año fiscal).
//
// Invariante: CompanyID ("COMP-<año>-<sec>") es único dentro de un año fiscal
// y nunca se reutiliza; la secuencia es max existente + 1 (001 si no hay).
type Company struct {
	ID           string
	FiscalYearID string
	CompanyID    string // identificador de negocio generado, ej. COMP-2025-001
	Name         string
	OwnerID      string
	Address      Address
	Phone        string
	Email        string
	BankAccounts []BankAccount
	Status       string // active, suspended, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const companyIDPrefix = "COMP"

// BuildCompanyID construye el identificador de negocio: COMP-<año>-<sec>,
// con la secuencia rellenada a 3 dígitos.
func BuildCompanyID(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", companyIDPrefix, year, seq)
}

// CompanySequence extrae la secuencia numérica de un CompanyID generado.
// Devuelve 0 si el formato no coincide.
func CompanySequence(companyID string) int {
	parts := strings.Split(companyID, "-")
	if len(parts) != 3 || parts[0] != companyIDPrefix {
		return 0
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	return n
}
