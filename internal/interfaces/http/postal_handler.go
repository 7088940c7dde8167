package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/pkg/postal"
)

// PostalHandler resuelve códigos postales contra el catálogo embebido.
type PostalHandler struct {
	cat *postal.Catalogue
}

// NewPostalHandler construye el handler.
func NewPostalHandler(cat *postal.Catalogue) *PostalHandler {
	return &PostalHandler{cat: cat}
}

// postalResponse salida de la consulta de código postal.
type postalResponse struct {
	Code       string `json:"code"`
	City       string `json:"city"`
	Department string `json:"department"`
}

// Lookup godoc
// @Summary      Resolver código postal a ciudad y departamento
// @Tags         postal
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código postal"
// @Success      200   {object}  postalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/postal/{code} [get]
func (h *PostalHandler) Lookup(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	place, ok := h.cat.Lookup(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código postal no encontrado"})
	}
	return c.JSON(postalResponse{Code: code, City: place.City, Department: place.Department})
}
