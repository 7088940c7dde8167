package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/auth"
	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/application/session"
)

// SessionHandler expone el estado de sesión resuelto y el destino de ruta.
type SessionHandler struct {
	tracker *session.Tracker
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(tracker *session.Tracker) *SessionHandler {
	return &SessionHandler{tracker: tracker}
}

// Get godoc
// @Summary      Estado de sesión y destino de ruta
// @Description  Re-ejecuta el bootstrap para el principal del token y calcula
// @Description  el destino canónico para el path actual ("" = permanecer).
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Param        path  query  string  false  "ruta actual del cliente"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}

	ws, err := h.tracker.OnPrincipalChanged(c.Context(), session.Principal{ID: userID})
	if err != nil {
		m := auth.MapAuthError(err)
		return c.Status(m.Status).JSON(dto.ErrorResponse{Code: m.Code, Message: m.Message})
	}

	currentPath := c.Query("path")
	return c.JSON(dto.SessionResponse{
		Workspace:   auth.ToWorkspaceResponse(ws, h.tracker.CurrentFor(userID)),
		Destination: session.Destination(true, ws.Role, ws.Ready(), currentPath),
	})
}
