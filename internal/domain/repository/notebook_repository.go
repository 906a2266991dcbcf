package repository

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain/entity"
)

// NotebookFilter filtros de búsqueda para listados de notebooks.
// Search aplica substring case-insensitive sobre serviceTag, hostname y zurichEmployee.
type NotebookFilter struct {
	Status             *entity.Status
	NotebookType       *entity.NotebookType
	PlaceID            *int64
	ResponsibleAnalyst *entity.Analyst
	ZurichEmployee     *string
	Search             *string
}

// NotebookPage parámetros de paginación y orden para List.
type NotebookPage struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// NotebookRepository define el puerto de persistencia para Notebook (DIP).
type NotebookRepository interface {
	Create(notebook *entity.Notebook) error
	GetByID(id int64) (*entity.Notebook, error)
	GetByServiceTag(serviceTag string) (*entity.Notebook, error)
	// GetDetailByID carga además el lugar actual y el último movimiento.
	GetDetailByID(id int64) (*entity.Notebook, error)
	GetDetailByServiceTag(serviceTag string) (*entity.Notebook, error)
	List(filter NotebookFilter, page NotebookPage) ([]*entity.Notebook, error)
	Count(filter NotebookFilter) (int64, error)
	// ListAll aplica los filtros sin paginar, con lugar y último movimiento cargados.
	ListAll(filter NotebookFilter) ([]*entity.Notebook, error)
	Update(notebook *entity.Notebook) error
	// SetStatusAndPlace actualiza solo la proyección estado/lugar (workflow de movimientos).
	SetStatusAndPlace(id int64, status entity.Status, placeID int64, updatedAt time.Time) error
	Delete(id int64) error
	CountByPlace(placeID int64) (int64, error)
	ListByPlace(placeID int64) ([]*entity.Notebook, error)
}
