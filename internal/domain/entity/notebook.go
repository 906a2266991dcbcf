package entity

import "time"

// Notebook representa un equipo rastreado en el proceso de rollout.
// ServiceTag es la clave alterna única de cara al usuario; Status y PlaceID son una
// proyección del último movimiento aplicado (ver Movement).
type Notebook struct {
	ID                 int64
	ServiceTag         string
	Hostname           *string
	Brand              string
	Model              string
	NotebookType       NotebookType
	RamConfig          RamConfig
	Status             Status
	PlaceID            *int64
	ResponsibleAnalyst *Analyst
	ZurichEmployee     *string
	OldNotebookID      *int64
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relaciones cargadas bajo demanda por los repositorios.
	Place        *Place
	LastMovement *Movement
}
