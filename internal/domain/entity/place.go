package entity

import "time"

// Place representa una ubicación física que puede albergar notebooks (sala, depósito, etc.).
type Place struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Notebooks actualmente en la ubicación (solo en FindOne).
	Notebooks []*Notebook
}
