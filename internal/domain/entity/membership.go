package entity

import "time"

// Membership es el registro de asignación por rol dentro de un año fiscal:
// la copia desnormalizada de la asignación del User (mismo "workspace"),
// más los campos propios del rol. Se crea y elimina junto con el User en el
// aprovisionamiento (escritura transaccional, nunca por separado).
type Membership struct {
	UserID       string
	FiscalYearID string
	Role         string // operator, driver, customer, supplier
	CompanyID    string

	// Campos de conductor
	VehicleType   string
	VehiclePlate  string
	LicenseNumber string

	// Campos de cliente
	Address string
	City    string

	// Campos de proveedor
	ContactName  string
	ContactPhone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
