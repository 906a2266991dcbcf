package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/movement"
)

// MovementHandler maneja las peticiones HTTP del workflow de movimientos.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear movimiento por ID de notebook
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if issues := checkStruct(in); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateByServiceTag godoc
// @Summary      Crear movimiento por service tag
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementByTagRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movements/by-service-tag [post]
func (h *MovementHandler) CreateByServiceTag(c *fiber.Ctx) error {
	var in dto.CreateMovementByTagRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if issues := checkStruct(in); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.CreateByServiceTag(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FindAll godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /movements [get]
func (h *MovementHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FindOne godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/{id} [get]
func (h *MovementHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	out, err := h.uc.FindOne(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FindByNotebookID godoc
// @Summary      Listar movimientos de un notebook por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  int  true  "ID del notebook"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/notebook/{id} [get]
func (h *MovementHandler) FindByNotebookID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	out, err := h.uc.FindByNotebookID(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FindByServiceTag godoc
// @Summary      Listar movimientos de un notebook por service tag
// @Tags         movements
// @Produce      json
// @Param        serviceTag  path  string  true  "Service tag del notebook"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/service-tag/{serviceTag} [get]
func (h *MovementHandler) FindByServiceTag(c *fiber.Ctx) error {
	serviceTag := c.Params("serviceTag")
	if serviceTag == "" {
		return respondWith(c, fiber.StatusBadRequest, "MISSING_SERVICE_TAG", "serviceTag es requerido")
	}
	out, err := h.uc.FindByServiceTag(serviceTag)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
