package repository

import "github.com/tu-usuario/rollout-api/internal/domain/entity"

// PlaceRepository define el puerto de persistencia para Place (DIP).
type PlaceRepository interface {
	Create(place *entity.Place) error
	GetByID(id int64) (*entity.Place, error)
	// List devuelve todas las ubicaciones ordenadas por nombre ascendente.
	List() ([]*entity.Place, error)
	Update(place *entity.Place) error
	Delete(id int64) error
}
