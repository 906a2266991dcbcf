package repository

import "github.com/tu-usuario/rollout-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// GetByID devuelve el movimiento con notebook y lugares cargados; nil si no existe.
	GetByID(id int64) (*entity.Movement, error)
	// List devuelve todos los movimientos, más recientes primero, con relaciones cargadas.
	List() ([]*entity.Movement, error)
	ListByNotebook(notebookID int64) ([]*entity.Movement, error)
	LatestByNotebook(notebookID int64) (*entity.Movement, error)
	CountByNotebook(notebookID int64) (int64, error)
	CountByOrigin(placeID int64) (int64, error)
	CountByDestiny(placeID int64) (int64, error)
}
