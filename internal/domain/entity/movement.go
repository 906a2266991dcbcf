package entity

import "time"

// Movement registro de auditoría de la transición de un notebook entre dos ubicaciones
// y dos estados, ejecutada por un analista. Una vez creado es inmutable: no existe
// operación de actualización ni de borrado.
type Movement struct {
	ID             int64
	NotebookID     int64
	OriginPlaceID  int64
	DestinyPlaceID int64
	PreviousStatus Status
	NewStatus      Status
	Analyst        Analyst
	Observation    *string
	CreatedAt      time.Time

	// Relaciones cargadas para conveniencia del caller.
	Notebook     *Notebook
	OriginPlace  *Place
	DestinyPlace *Place
}
