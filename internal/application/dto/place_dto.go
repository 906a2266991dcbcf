package dto

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain/entity"
)

// CreatePlaceRequest entrada para crear una ubicación.
type CreatePlaceRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdatePlaceRequest entrada para actualizar parcialmente una ubicación.
type UpdatePlaceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PlaceResponse salida de una ubicación.
type PlaceResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Notebooks   []NotebookResponse `json:"notebooks,omitempty"`
}

// NewPlaceResponse mapea la entidad a su representación HTTP.
func NewPlaceResponse(p *entity.Place) *PlaceResponse {
	if p == nil {
		return nil
	}
	out := &PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, n := range p.Notebooks {
		out.Notebooks = append(out.Notebooks, *NewNotebookResponse(n))
	}
	return out
}
