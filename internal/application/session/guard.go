package session

import "github.com/tu-usuario/delivery-pro/internal/domain/entity"

// Rutas canónicas de la aplicación.
const (
	PathLogin      = "/login"
	PathDashboard  = "/dashboard"
	PathFYSetup    = "/fy-setup"
	PathManagement = "/management"
	PathOperator   = "/operator"
	PathDriver     = "/driver"
	PathCustomer   = "/customer"
	PathSupplier   = "/supplier"
)

// Stay es el valor de "permanecer en la ruta actual".
const Stay = ""

// Destination calcula el destino canónico para el estado de sesión y la ruta
// actual. Función pura; tabla de decisión evaluada en orden, primer match gana.
// Devuelve Stay ("") si no hay redirección.
//
// El orden importa: la regla de permanencia en /dashboard para admin se evalúa
// antes que la de readiness, de modo que un admin sin setup parado en
// /dashboard no es enviado a /fy-setup desde ahí.
func Destination(authenticated bool, role string, ready bool, currentPath string) string {
	if !authenticated {
		return PathLogin
	}
	if currentPath == PathLogin {
		return PathDashboard
	}

	switch role {
	case entity.RoleAdmin:
		if currentPath == PathDashboard {
			return Stay
		}
		if !ready {
			return PathFYSetup
		}
		if currentPath != PathManagement {
			return PathManagement
		}
		return PathDashboard

	case entity.RoleOperator:
		return stayOrGo(currentPath, PathOperator)
	case entity.RoleDriver:
		return stayOrGo(currentPath, PathDriver)
	case entity.RoleCustomer:
		return stayOrGo(currentPath, PathCustomer)
	case entity.RoleSupplier:
		return stayOrGo(currentPath, PathSupplier)
	default:
		return stayOrGo(currentPath, PathDashboard)
	}
}

func stayOrGo(currentPath, home string) string {
	if currentPath == home {
		return Stay
	}
	return home
}
