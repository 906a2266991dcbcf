package usecase

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

// PlaceUseCase casos de uso CRUD para ubicaciones, incluida la guarda de integridad
// referencial al eliminar (el storage no declara FKs restrictivas, la guarda es manual).
type PlaceUseCase struct {
	repo         repository.PlaceRepository
	notebookRepo repository.NotebookRepository
	movementRepo repository.MovementRepository
}

// NewPlaceUseCase construye el caso de uso.
func NewPlaceUseCase(
	repo repository.PlaceRepository,
	notebookRepo repository.NotebookRepository,
	movementRepo repository.MovementRepository,
) *PlaceUseCase {
	return &PlaceUseCase{repo: repo, notebookRepo: notebookRepo, movementRepo: movementRepo}
}

// Create crea una nueva ubicación, activa por defecto.
func (uc *PlaceUseCase) Create(in dto.CreatePlaceRequest) (*dto.PlaceResponse, error) {
	now := time.Now()
	place := &entity.Place{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(place); err != nil {
		return nil, err
	}
	return dto.NewPlaceResponse(place), nil
}

// FindAll lista todas las ubicaciones ordenadas por nombre.
func (uc *PlaceUseCase) FindAll() ([]dto.PlaceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlaceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *dto.NewPlaceResponse(p))
	}
	return out, nil
}

// FindOne devuelve una ubicación con los notebooks que alberga actualmente.
func (uc *PlaceUseCase) FindOne(id int64) (*dto.PlaceResponse, error) {
	place, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, domain.NotFoundf("Local", id)
	}
	notebooks, err := uc.notebookRepo.ListByPlace(id)
	if err != nil {
		return nil, err
	}
	place.Notebooks = notebooks
	return dto.NewPlaceResponse(place), nil
}

// Update aplica una actualización parcial a una ubicación.
func (uc *PlaceUseCase) Update(id int64, in dto.UpdatePlaceRequest) (*dto.PlaceResponse, error) {
	place, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, domain.NotFoundf("Local", id)
	}
	if in.Name != nil {
		place.Name = *in.Name
	}
	if in.Description != nil {
		place.Description = in.Description
	}
	if in.IsActive != nil {
		place.IsActive = *in.IsActive
	}
	place.UpdatedAt = time.Now()
	if err := uc.repo.Update(place); err != nil {
		return nil, err
	}
	return dto.NewPlaceResponse(place), nil
}

// Remove elimina una ubicación si nada la referencia: ni notebooks actualmente en ella,
// ni movimientos que la tengan como origen o destino.
func (uc *PlaceUseCase) Remove(id int64) error {
	place, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if place == nil {
		return domain.NotFoundf("Local", id)
	}

	notebookCount, err := uc.notebookRepo.CountByPlace(id)
	if err != nil {
		return err
	}
	if notebookCount > 0 {
		return domain.Conflictf("Local posee %d notebooks asociados y no puede ser eliminado", notebookCount)
	}

	originCount, err := uc.movementRepo.CountByOrigin(id)
	if err != nil {
		return err
	}
	destinyCount, err := uc.movementRepo.CountByDestiny(id)
	if err != nil {
		return err
	}
	if originCount > 0 || destinyCount > 0 {
		return domain.Conflictf(
			"Local posee movimientos asociados y no puede ser eliminado. Movimientos como origen: %d, movimientos como destino: %d",
			originCount, destinyCount)
	}

	return uc.repo.Delete(id)
}
