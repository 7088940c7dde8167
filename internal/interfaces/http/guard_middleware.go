package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/application/session"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
)

// RequireWorkspace exige que los roles de workspace (operator/driver/customer/
// supplier) lleguen con empresa y año fiscal asignados en el token. Un perfil
// a medio aprovisionar no puede operar sobre recursos con alcance de empresa.
// Admin pasa: su acceso se gobierna con RequireReadiness. Debe usarse DESPUÉS
// de AuthMiddleware.
func RequireWorkspace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if !entity.IsWorkspaceRole(role) {
			return c.Next()
		}
		if GetCompanyID(c) == "" || GetFiscalYear(c) == "" {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "CONFIG_REQUIRED",
				Message: "el usuario no tiene empresa o año fiscal asignado",
			})
		}
		return c.Next()
	}
}

// RequireReadiness bloquea las operaciones de administración mientras el
// workspace DEL PRINCIPAL del token no esté listo. Tri-estado: resolviendo (o
// bootstrap nunca ejecutado en este proceso) responde 503 (reintentable vía
// GET /api/session), no listo responde 409 (falta configuración inicial).
func RequireReadiness(tracker *session.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := tracker.CurrentFor(GetUserID(c))
		switch snap.ReadyState() {
		case session.ReadyUnknown:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "RESOLVING",
				Message: "resolviendo el workspace, intente de nuevo",
			})
		case session.ReadyNo:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "CONFIG_REQUIRED",
				Message: "el workspace requiere configuración inicial (año fiscal y empresa)",
			})
		default:
			return c.Next()
		}
	}
}
