package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
)

// Capa de validación: los DTOs se comprueban contra sus tags antes de que corra
// cualquier caso de uso, así el workflow nunca ve valores fuera de enumeración.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los nombres de campo tal como viajan en el JSON / query string.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// checkStruct valida un DTO y devuelve los problemas por campo, o nil si es válido.
func checkStruct(in any) []dto.FieldIssue {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldIssue{{Message: err.Error()}}
	}
	issues := make([]dto.FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, dto.FieldIssue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede superar %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}

// respondValidation respuesta 400 VALIDATION_ERROR con el detalle por campo.
func respondValidation(c *fiber.Ctx, issues []dto.FieldIssue) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Message:    "datos de entrada inválidos",
		Code:       "VALIDATION_ERROR",
		StatusCode: fiber.StatusBadRequest,
		Issues:     issues,
	})
}
