package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP {message, code, statusCode}.
// Cualquier error no tipado colapsa a INTERNAL conservando el mensaje original.
func respondError(c *fiber.Ctx, err error) error {
	var notFound *domain.NotFoundError
	var conflict *domain.ConflictError
	var badRequest *domain.BadRequestError

	switch {
	case errors.As(err, &notFound):
		return respondWith(c, fiber.StatusNotFound, "NOT_FOUND", notFound.Error())
	case errors.As(err, &conflict):
		return respondWith(c, fiber.StatusConflict, "CONFLICT", conflict.Error())
	case errors.As(err, &badRequest):
		return respondWith(c, fiber.StatusBadRequest, "BAD_REQUEST", badRequest.Error())
	default:
		return respondWith(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func respondWith(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Message:    message,
		Code:       code,
		StatusCode: status,
	})
}

// respondInvalidBody respuesta uniforme para cuerpos que no parsean.
func respondInvalidBody(c *fiber.Ctx) error {
	return respondWith(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// respondInvalidID respuesta uniforme para parámetros de ruta no numéricos.
func respondInvalidID(c *fiber.Ctx) error {
	return respondWith(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
}
