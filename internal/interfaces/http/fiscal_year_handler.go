package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	"github.com/tu-usuario/delivery-pro/internal/domain"
)

// FiscalYearHandler maneja las peticiones HTTP para FiscalYear (solo admin).
type FiscalYearHandler struct {
	uc *usecase.FiscalYearUseCase
}

// NewFiscalYearHandler construye el handler.
func NewFiscalYearHandler(uc *usecase.FiscalYearUseCase) *FiscalYearHandler {
	return &FiscalYearHandler{uc: uc}
}

// Create godoc
// @Summary      Crear año fiscal
// @Tags         fiscal-years
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFiscalYearRequest  true  "start_date, end_date (YYYY-MM-DD)"
// @Success      201   {object}  dto.FiscalYearResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fiscal-years [post]
func (h *FiscalYearHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFiscalYearRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StartDate == "" || in.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas: formato YYYY-MM-DD y fin posterior al inicio"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el año fiscal ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar años fiscales
// @Tags         fiscal-years
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FiscalYearListResponse
// @Router       /api/fiscal-years [get]
func (h *FiscalYearHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
