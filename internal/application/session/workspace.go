// Package session implementa el bootstrap de sesión por rol y el route guard:
// a partir de un principal autenticado resuelve {rol, empresa, año fiscal,
// registro de empresa, readiness} contra el almacén, reparando datos
// incompletos (backfill de año fiscal), y calcula el destino canónico de ruta.
package session

import "github.com/tu-usuario/delivery-pro/internal/domain/entity"

// Readiness es tri-estado: las vistas de admin distinguen "resolviendo"
// (Unknown) de "no listo" (No).
type Readiness int

const (
	ReadyUnknown Readiness = iota
	ReadyNo
	ReadyYes
)

// String para serializar en respuestas y logs.
func (r Readiness) String() string {
	switch r {
	case ReadyNo:
		return "no"
	case ReadyYes:
		return "yes"
	default:
		return "unknown"
	}
}

// Workspace es el contexto resuelto de la sesión.
type Workspace struct {
	Role       string
	CompanyID  string
	FiscalYear string
	Company    *entity.Company // nil si no se pudo materializar
	Readiness  Readiness
}

// Ready informa si el workspace quedó operativo.
func (w Workspace) Ready() bool { return w.Readiness == ReadyYes }

// emptyWorkspace es el estado seguro inicial (y el de logout).
func emptyWorkspace() Workspace {
	return Workspace{Role: entity.RoleDefault, Readiness: ReadyNo}
}
