package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrBadRequest   = errors.New("petición inválida")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInternal     = errors.New("error interno")
)

// NotFoundError indica que una entidad referenciada no existe.
// Resource nombra el recurso y Identifier el id o service tag consultado,
// para que el caller pueda distinguir cuál referencia falló.
type NotFoundError struct {
	Resource   string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con identificador %s no encontrado", e.Resource, e.Identifier)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFoundf construye un NotFoundError con identificador formateado.
func NotFoundf(resource string, identifier any) *NotFoundError {
	return &NotFoundError{Resource: resource, Identifier: fmt.Sprint(identifier)}
}

// ConflictError indica una violación de unicidad o de integridad referencial
// detectada por las guardas del workflow (p. ej. borrar un lugar con notebooks).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// Conflictf construye un ConflictError con mensaje formateado.
func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// BadRequestError indica datos de entrada inválidos a nivel de negocio
// (campo obligatorio ausente, referencia foránea inválida).
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func (e *BadRequestError) Unwrap() error { return ErrBadRequest }

// BadRequestf construye un BadRequestError con mensaje formateado.
func BadRequestf(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}
