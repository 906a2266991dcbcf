package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
)

// PlaceHandler maneja las peticiones HTTP para ubicaciones.
type PlaceHandler struct {
	uc *usecase.PlaceUseCase
}

// NewPlaceHandler construye el handler.
func NewPlaceHandler(uc *usecase.PlaceUseCase) *PlaceHandler {
	return &PlaceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlaceRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.PlaceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /places [post]
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlaceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if issues := checkStruct(in); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FindAll godoc
// @Summary      Listar ubicaciones (por nombre ascendente)
// @Tags         places
// @Produce      json
// @Success      200  {array}  dto.PlaceResponse
// @Router       /places [get]
func (h *PlaceHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FindOne godoc
// @Summary      Obtener ubicación por ID (con sus notebooks)
// @Tags         places
// @Produce      json
// @Param        id   path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.PlaceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /places/{id} [get]
func (h *PlaceHandler) FindOne(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar ubicación
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la ubicación"
// @Param        body  body  dto.UpdatePlaceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PlaceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /places/{id} [patch]
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	var in dto.UpdatePlaceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if issues := checkStruct(in); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar ubicación (solo sin referencias)
// @Tags         places
// @Param        id  path  int  true  "ID de la ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /places/{id} [delete]
func (h *PlaceHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	if err := h.uc.Remove(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
