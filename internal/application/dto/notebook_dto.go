package dto

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain/entity"
)

// CreateNotebookRequest entrada para registrar un notebook.
// Los campos opcionales reciben defaults en el caso de uso (Dell 5450, NEW, GB16, PENDING_HOMOLOGATION).
type CreateNotebookRequest struct {
	ServiceTag         string  `json:"serviceTag" validate:"required,min=1"`
	Hostname           *string `json:"hostname"`
	Brand              *string `json:"brand"`
	Model              *string `json:"model"`
	NotebookType       *string `json:"notebookType" validate:"omitempty,oneof=NEW OLD"`
	RamConfig          *string `json:"ramConfig" validate:"omitempty,oneof=GB16 GB32 OTHER"`
	Status             *string `json:"status" validate:"omitempty,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	PlaceID            *int64  `json:"placeId" validate:"omitempty,gt=0"`
	ResponsibleAnalyst *string `json:"responsibleAnalyst" validate:"omitempty,oneof=OSVALDO DANIEL THIAGO BRUNO"`
	ZurichEmployee     *string `json:"zurichEmployee"`
	OldNotebookID      *int64  `json:"oldNotebookId" validate:"omitempty,gt=0"`
}

// UpdateNotebookRequest entrada para actualizar parcialmente un notebook.
// OldNotebookID tiene su propia ruta de actualización (enlace al equipo reemplazado).
type UpdateNotebookRequest struct {
	Hostname           *string `json:"hostname"`
	Brand              *string `json:"brand"`
	Model              *string `json:"model"`
	NotebookType       *string `json:"notebookType" validate:"omitempty,oneof=NEW OLD"`
	RamConfig          *string `json:"ramConfig" validate:"omitempty,oneof=GB16 GB32 OTHER"`
	Status             *string `json:"status" validate:"omitempty,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	PlaceID            *int64  `json:"placeId" validate:"omitempty,gt=0"`
	ResponsibleAnalyst *string `json:"responsibleAnalyst" validate:"omitempty,oneof=OSVALDO DANIEL THIAGO BRUNO"`
	ZurichEmployee     *string `json:"zurichEmployee"`
	OldNotebookID      *int64  `json:"oldNotebookId" validate:"omitempty,gt=0"`
}

// NotebookQuery paginación, orden y filtros para GET /notebooks.
type NotebookQuery struct {
	Page         int    `query:"page" validate:"omitempty,gt=0"`
	Limit        int    `query:"limit" validate:"omitempty,gt=0,max=100"`
	SortBy       string `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt serviceTag hostname status"`
	SortOrder    string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Status       string `query:"status" validate:"omitempty,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	NotebookType string `query:"notebookType" validate:"omitempty,oneof=NEW OLD"`
	PlaceID      int64  `query:"placeId" validate:"omitempty,gt=0"`
	Search       string `query:"search"`
}

// Defaults aplica los valores por defecto de paginación y orden.
func (q *NotebookQuery) Defaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

// InventoryQuery filtros multi-campo para GET /notebooks/inventory (sin paginación).
type InventoryQuery struct {
	PlaceID            int64  `query:"placeId" validate:"omitempty,gt=0"`
	NotebookType       string `query:"notebookType" validate:"omitempty,oneof=NEW OLD"`
	Status             string `query:"status" validate:"omitempty,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	ResponsibleAnalyst string `query:"responsibleAnalyst" validate:"omitempty,oneof=OSVALDO DANIEL THIAGO BRUNO"`
	ZurichEmployee     string `query:"zurichEmployee"`
}

// NotebookResponse salida de un notebook.
type NotebookResponse struct {
	ID                 int64             `json:"id"`
	ServiceTag         string            `json:"serviceTag"`
	Hostname           *string           `json:"hostname,omitempty"`
	Brand              string            `json:"brand"`
	Model              string            `json:"model"`
	NotebookType       string            `json:"notebookType"`
	RamConfig          string            `json:"ramConfig"`
	Status             string            `json:"status"`
	PlaceID            *int64            `json:"placeId,omitempty"`
	ResponsibleAnalyst *string           `json:"responsibleAnalyst,omitempty"`
	ZurichEmployee     *string           `json:"zurichEmployee,omitempty"`
	OldNotebookID      *int64            `json:"oldNotebookId,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	Place              *PlaceResponse    `json:"place,omitempty"`
	LastMovement       *MovementResponse `json:"lastMovement,omitempty"`
}

// PaginatedNotebooksResponse página de notebooks con metadatos de paginación.
type PaginatedNotebooksResponse struct {
	Data       []NotebookResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// NewNotebookResponse mapea la entidad a su representación HTTP.
func NewNotebookResponse(n *entity.Notebook) *NotebookResponse {
	if n == nil {
		return nil
	}
	out := &NotebookResponse{
		ID:             n.ID,
		ServiceTag:     n.ServiceTag,
		Hostname:       n.Hostname,
		Brand:          n.Brand,
		Model:          n.Model,
		NotebookType:   string(n.NotebookType),
		RamConfig:      string(n.RamConfig),
		Status:         string(n.Status),
		PlaceID:        n.PlaceID,
		ZurichEmployee: n.ZurichEmployee,
		OldNotebookID:  n.OldNotebookID,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
	if n.ResponsibleAnalyst != nil {
		analyst := string(*n.ResponsibleAnalyst)
		out.ResponsibleAnalyst = &analyst
	}
	if n.Place != nil {
		out.Place = NewPlaceResponse(n.Place)
	}
	if n.LastMovement != nil {
		out.LastMovement = NewMovementResponse(n.LastMovement)
	}
	return out
}
