package movement

import (
	"context"
	"time"

	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

// UseCase workflow de movimientos: registra la transición de un notebook entre dos
// ubicaciones/estados como una unidad atómica (alta en movements + actualización de la
// proyección status/place_id del notebook en la misma transacción).
type UseCase struct {
	txRunner     TxRunner
	notebookRepo repository.NotebookRepository
	placeRepo    repository.PlaceRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	notebookRepo repository.NotebookRepository,
	placeRepo repository.PlaceRepository,
	movementRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		notebookRepo: notebookRepo,
		placeRepo:    placeRepo,
		movementRepo: movementRepo,
	}
}

// Create registra un movimiento localizando el notebook por su ID numérico.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	notebook, err := uc.notebookRepo.GetByID(in.NotebookID)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", in.NotebookID)
	}
	return uc.create(ctx, notebook, in.OriginPlaceID, in.DestinyPlaceID,
		entity.Status(in.PreviousStatus), entity.Status(in.NewStatus),
		entity.Analyst(in.Analyst), in.Observation)
}

// CreateByServiceTag registra un movimiento localizando el notebook por su service tag.
func (uc *UseCase) CreateByServiceTag(ctx context.Context, in dto.CreateMovementByTagRequest) (*dto.MovementResponse, error) {
	notebook, err := uc.notebookRepo.GetByServiceTag(in.ServiceTag)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", in.ServiceTag)
	}
	return uc.create(ctx, notebook, in.OriginPlaceID, in.DestinyPlaceID,
		entity.Status(in.PreviousStatus), entity.Status(in.NewStatus),
		entity.Analyst(in.Analyst), in.Observation)
}

// create valida las referencias en orden fijo (origen, destino) y ejecuta las dos
// escrituras dentro de la transacción del TxRunner. previousStatus se acepta tal como
// lo declara el caller: no se contrasta con el estado actual del notebook, para no
// romper la carga retroactiva de movimientos históricos.
func (uc *UseCase) create(
	ctx context.Context,
	notebook *entity.Notebook,
	originPlaceID, destinyPlaceID int64,
	previousStatus, newStatus entity.Status,
	analyst entity.Analyst,
	observation *string,
) (*dto.MovementResponse, error) {
	origin, err := uc.placeRepo.GetByID(originPlaceID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, domain.NotFoundf("Local de origen", originPlaceID)
	}

	destiny, err := uc.placeRepo.GetByID(destinyPlaceID)
	if err != nil {
		return nil, err
	}
	if destiny == nil {
		return nil, domain.NotFoundf("Local de destino", destinyPlaceID)
	}

	now := time.Now()
	mov := &entity.Movement{
		NotebookID:     notebook.ID,
		OriginPlaceID:  originPlaceID,
		DestinyPlaceID: destinyPlaceID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Analyst:        analyst,
		Observation:    observation,
		CreatedAt:      now,
	}

	// Ambas escrituras comparten la transacción: o se ven las dos o ninguna.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		notebookRepo repository.NotebookRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return notebookRepo.SetStatusAndPlace(notebook.ID, newStatus, destinyPlaceID, now)
	})
	if err != nil {
		return nil, err
	}

	mov.Notebook = notebook
	mov.OriginPlace = origin
	mov.DestinyPlace = destiny
	return dto.NewMovementResponse(mov), nil
}

// FindAll devuelve todos los movimientos, más recientes primero.
func (uc *UseCase) FindAll() ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// FindOne devuelve un movimiento por ID.
func (uc *UseCase) FindOne(id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.NotFoundf("Movement", id)
	}
	return dto.NewMovementResponse(mov), nil
}

// FindByNotebookID devuelve los movimientos de un notebook, más recientes primero.
func (uc *UseCase) FindByNotebookID(notebookID int64) ([]dto.MovementResponse, error) {
	notebook, err := uc.notebookRepo.GetByID(notebookID)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", notebookID)
	}
	list, err := uc.movementRepo.ListByNotebook(notebookID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// FindByServiceTag devuelve los movimientos de un notebook localizado por service tag.
func (uc *UseCase) FindByServiceTag(serviceTag string) ([]dto.MovementResponse, error) {
	notebook, err := uc.notebookRepo.GetByServiceTag(serviceTag)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", serviceTag)
	}
	list, err := uc.movementRepo.ListByNotebook(notebook.ID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

func toResponses(list []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *dto.NewMovementResponse(m))
	}
	return out
}
