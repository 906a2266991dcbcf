package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
)

// NotebookHandler maneja las peticiones HTTP para notebooks.
type NotebookHandler struct {
	uc *usecase.NotebookUseCase
}

// NewNotebookHandler construye el handler.
func NewNotebookHandler(uc *usecase.NotebookUseCase) *NotebookHandler {
	return &NotebookHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar notebook
// @Tags         notebooks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotebookRequest  true  "Datos del notebook"
// @Success      201   {object}  dto.NotebookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /notebooks [post]
func (h *NotebookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotebookRequest
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
// @Summary      Listar notebooks con paginación, orden, filtros y búsqueda
// @Tags         notebooks
// @Produce      json
// @Param        page          query  int     false  "Página"  default(1)
// @Param        limit         query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy        query  string  false  "Campo de orden"  default(createdAt)
// @Param        sortOrder     query  string  false  "asc o desc"  default(desc)
// @Param        status        query  string  false  "Filtro por estado"
// @Param        notebookType  query  string  false  "Filtro por tipo"
// @Param        placeId       query  int     false  "Filtro por ubicación"
// @Param        search        query  string  false  "Busca en serviceTag, hostname y zurichEmployee"
// @Success      200  {object}  dto.PaginatedNotebooksResponse
// @Router       /notebooks [get]
func (h *NotebookHandler) FindAll(c *fiber.Ctx) error {
	var query dto.NotebookQuery
	if err := c.QueryParser(&query); err != nil {
		return respondWith(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	if issues := checkStruct(query); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.FindAll(query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario filtrado multi-campo, sin paginación
// @Tags         notebooks
// @Produce      json
// @Param        placeId             query  int     false  "Filtro por ubicación"
// @Param        notebookType        query  string  false  "Filtro por tipo"
// @Param        status              query  string  false  "Filtro por estado"
// @Param        responsibleAnalyst  query  string  false  "Filtro por analista"
// @Param        zurichEmployee      query  string  false  "Substring del empleado asignado"
// @Success      200  {array}  dto.NotebookResponse
// @Router       /notebooks/inventory [get]
func (h *NotebookHandler) Inventory(c *fiber.Ctx) error {
	var query dto.InventoryQuery
	if err := c.QueryParser(&query); err != nil {
		return respondWith(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	if issues := checkStruct(query); issues != nil {
		return respondValidation(c, issues)
	}
	out, err := h.uc.FindByFilters(query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FindOne godoc
// @Summary      Obtener notebook por ID (con lugar y último movimiento)
// @Tags         notebooks
// @Produce      json
// @Param        id   path  int  true  "ID del notebook"
// @Success      200  {object}  dto.NotebookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /notebooks/{id} [get]
func (h *NotebookHandler) FindOne(c *fiber.Ctx) error {
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

// FindByServiceTag godoc
// @Summary      Obtener notebook por service tag
// @Tags         notebooks
// @Produce      json
// @Param        serviceTag  path  string  true  "Service tag"
// @Success      200  {object}  dto.NotebookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /notebooks/service-tag/{serviceTag} [get]
func (h *NotebookHandler) FindByServiceTag(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar notebook (parcial)
// @Tags         notebooks
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del notebook"
// @Param        body  body  dto.UpdateNotebookRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.NotebookResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /notebooks/{id} [patch]
func (h *NotebookHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	var in dto.UpdateNotebookRequest
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
// @Summary      Eliminar notebook (solo sin movimientos)
// @Tags         notebooks
// @Param        id  path  int  true  "ID del notebook"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /notebooks/{id} [delete]
func (h *NotebookHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondInvalidID(c)
	}
	if err := h.uc.Remove(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
