package entity

import "time"

// Roles válidos para User. "user" es el rol por defecto cuando el perfil
// se crea de forma diferida en el primer login (aún sin aprovisionar).
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleDriver   = "driver"
	RoleCustomer = "customer"
	RoleSupplier = "supplier"
	RoleDefault  = "user"
)

// WorkspaceRoles son los roles que llevan registro de membresía por año fiscal
// (ver entity.Membership). admin y el rol por defecto no llevan membresía.
var WorkspaceRoles = []string{RoleOperator, RoleDriver, RoleCustomer, RoleSupplier}

// IsWorkspaceRole informa si el rol lleva registro de membresía por año fiscal.
func IsWorkspaceRole(role string) bool {
	for _, r := range WorkspaceRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa el perfil de un principal autenticado. Invariante: exactamente
// un User por principal; se crea de forma diferida (rol "user", sin empresa ni
// año fiscal) si no existe al autenticarse.
type User struct {
	ID                string
	Email             string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Name              string
	Role              string // ver constantes Role*
	CompanyID         string // vacío = sin asignar
	CurrentFiscalYear string // vacío = sin asignar; lo rellena la inferencia del bootstrap
	Status            string // active, inactive, suspended
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
