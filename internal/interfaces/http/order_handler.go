package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	"github.com/tu-usuario/delivery-pro/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	manifest *usecase.ManifestUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, manifest *usecase.ManifestUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, manifest: manifest}
}

func actorFrom(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
		Role:      GetRole(c),
	}
}

// Create godoc
// @Summary      Crear orden de entrega
// @Description  Los precios y tarifas se congelan desde los productos al crear.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || in.PickupAddress == "" || in.DeliveryAddress == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, direcciones e items son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), actorFrom(c), GetFiscalYear(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta empresa o año fiscal en la sesión"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "línea inválida: producto inexistente o de otra empresa"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_INACTIVE", Message: "la orden referencia un producto inactivo"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), actorFrom(c), id)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes visibles para el actor
// @Description  Conductores ven sus órdenes asignadas; clientes las suyas;
// @Description  operadores y admin las de la empresa.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "filtrar por estado"
// @Param        limit   query  int     false  "máximo de resultados"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), actorFrom(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AssignDriver godoc
// @Summary      Asignar conductor a la orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la orden"
// @Param        body  body  dto.AssignDriverRequest  true  "driver_id"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/assign [post]
func (h *OrderHandler) AssignDriver(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AssignDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DriverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "driver_id es requerido"})
	}
	out, err := h.uc.AssignDriver(c.Context(), actorFrom(c), id, in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de la orden
// @Description  Solo transiciones válidas: pending→assigned→in_transit→delivered,
// @Description  cancelación desde cualquier estado no terminal.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), actorFrom(c), id, in.Status)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Manifest godoc
// @Summary      Descargar manifiesto de entrega en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/manifest [get]
func (h *OrderHandler) Manifest(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, filename, err := h.manifest.Generate(c.Context(), actorFrom(c), id)
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// orderError traduce los errores de dominio de órdenes a respuestas HTTP.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta orden"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
