package dto

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain/entity"
)

// CreateMovementRequest entrada para crear un movimiento a partir del ID del notebook.
type CreateMovementRequest struct {
	NotebookID     int64   `json:"notebookId" validate:"required,gt=0"`
	OriginPlaceID  int64   `json:"originPlaceId" validate:"required,gt=0"`
	DestinyPlaceID int64   `json:"destinyPlaceId" validate:"required,gt=0"`
	PreviousStatus string  `json:"previousStatus" validate:"required,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	NewStatus      string  `json:"newStatus" validate:"required,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	Analyst        string  `json:"analyst" validate:"required,oneof=OSVALDO DANIEL THIAGO BRUNO"`
	Observation    *string `json:"observation"`
}

// CreateMovementByTagRequest entrada para crear un movimiento a partir de la service tag.
type CreateMovementByTagRequest struct {
	ServiceTag     string  `json:"serviceTag" validate:"required,min=1"`
	OriginPlaceID  int64   `json:"originPlaceId" validate:"required,gt=0"`
	DestinyPlaceID int64   `json:"destinyPlaceId" validate:"required,gt=0"`
	PreviousStatus string  `json:"previousStatus" validate:"required,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	NewStatus      string  `json:"newStatus" validate:"required,oneof=PENDING_HOMOLOGATION HOMOLOGATED IN_HOMOLOGATION IN_ROLLOUT DELIVERED RETURNED COMPLETED"`
	Analyst        string  `json:"analyst" validate:"required,oneof=OSVALDO DANIEL THIAGO BRUNO"`
	Observation    *string `json:"observation"`
}

// MovementResponse salida de un movimiento con sus relaciones cargadas.
type MovementResponse struct {
	ID             int64             `json:"id"`
	NotebookID     int64             `json:"notebookId"`
	OriginPlaceID  int64             `json:"originPlaceId"`
	DestinyPlaceID int64             `json:"destinyPlaceId"`
	PreviousStatus string            `json:"previousStatus"`
	NewStatus      string            `json:"newStatus"`
	Analyst        string            `json:"analyst"`
	Observation    *string           `json:"observation,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	Notebook       *NotebookResponse `json:"notebook,omitempty"`
	OriginPlace    *PlaceResponse    `json:"originPlace,omitempty"`
	DestinyPlace   *PlaceResponse    `json:"destinyPlace,omitempty"`
}

// NewMovementResponse mapea la entidad a su representación HTTP.
func NewMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:             m.ID,
		NotebookID:     m.NotebookID,
		OriginPlaceID:  m.OriginPlaceID,
		DestinyPlaceID: m.DestinyPlaceID,
		PreviousStatus: string(m.PreviousStatus),
		NewStatus:      string(m.NewStatus),
		Analyst:        string(m.Analyst),
		Observation:    m.Observation,
		CreatedAt:      m.CreatedAt,
		Notebook:       NewNotebookResponse(m.Notebook),
		OriginPlace:    NewPlaceResponse(m.OriginPlace),
		DestinyPlace:   NewPlaceResponse(m.DestinyPlace),
	}
}
