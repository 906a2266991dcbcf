package usecase

import (
	"time"

	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

// Defaults de alta para el parque homologado del rollout.
const (
	defaultBrand = "Dell"
	defaultModel = "5450"
)

// NotebookUseCase casos de uso CRUD para notebooks.
type NotebookUseCase struct {
	repo         repository.NotebookRepository
	placeRepo    repository.PlaceRepository
	movementRepo repository.MovementRepository
}

// NewNotebookUseCase construye el caso de uso.
func NewNotebookUseCase(
	repo repository.NotebookRepository,
	placeRepo repository.PlaceRepository,
	movementRepo repository.MovementRepository,
) *NotebookUseCase {
	return &NotebookUseCase{repo: repo, placeRepo: placeRepo, movementRepo: movementRepo}
}

// Create registra un notebook. El lugar referenciado, si se indica, debe existir.
func (uc *NotebookUseCase) Create(in dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	if in.ServiceTag == "" {
		return nil, domain.BadRequestf("ServiceTag es obligatorio")
	}

	if in.PlaceID != nil {
		place, err := uc.placeRepo.GetByID(*in.PlaceID)
		if err != nil {
			return nil, err
		}
		if place == nil {
			return nil, domain.NotFoundf("Local", *in.PlaceID)
		}
	}

	now := time.Now()
	notebook := &entity.Notebook{
		ServiceTag:     in.ServiceTag,
		Hostname:       in.Hostname,
		Brand:          stringOr(in.Brand, defaultBrand),
		Model:          stringOr(in.Model, defaultModel),
		NotebookType:   entity.NotebookType(stringOr(in.NotebookType, string(entity.NotebookTypeNew))),
		RamConfig:      entity.RamConfig(stringOr(in.RamConfig, string(entity.RamConfigGB16))),
		Status:         entity.Status(stringOr(in.Status, string(entity.StatusPendingHomologation))),
		PlaceID:        in.PlaceID,
		ZurichEmployee: in.ZurichEmployee,
		OldNotebookID:  in.OldNotebookID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.ResponsibleAnalyst != nil {
		analyst := entity.Analyst(*in.ResponsibleAnalyst)
		notebook.ResponsibleAnalyst = &analyst
	}

	if err := uc.repo.Create(notebook); err != nil {
		return nil, err
	}
	return dto.NewNotebookResponse(notebook), nil
}

// FindAll lista notebooks con paginación, orden y filtros.
func (uc *NotebookUseCase) FindAll(query dto.NotebookQuery) (*dto.PaginatedNotebooksResponse, error) {
	query.Defaults()
	filter := listFilter(query)

	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}

	page := repository.NotebookPage{
		Limit:     query.Limit,
		Offset:    (query.Page - 1) * query.Limit,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	list, err := uc.repo.List(filter, page)
	if err != nil {
		return nil, err
	}

	data := make([]dto.NotebookResponse, 0, len(list))
	for _, n := range list {
		data = append(data, *dto.NewNotebookResponse(n))
	}
	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
	return &dto.PaginatedNotebooksResponse{
		Data:       data,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindOne devuelve un notebook con su lugar y su último movimiento.
func (uc *NotebookUseCase) FindOne(id int64) (*dto.NotebookResponse, error) {
	notebook, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", id)
	}
	return dto.NewNotebookResponse(notebook), nil
}

// FindByServiceTag devuelve un notebook localizado por service tag, con detalle cargado.
func (uc *NotebookUseCase) FindByServiceTag(serviceTag string) (*dto.NotebookResponse, error) {
	notebook, err := uc.repo.GetDetailByServiceTag(serviceTag)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", serviceTag)
	}
	return dto.NewNotebookResponse(notebook), nil
}

// FindByFilters devuelve el inventario filtrado multi-campo, sin paginación.
func (uc *NotebookUseCase) FindByFilters(query dto.InventoryQuery) ([]dto.NotebookResponse, error) {
	filter := repository.NotebookFilter{}
	if query.PlaceID > 0 {
		filter.PlaceID = &query.PlaceID
	}
	if query.NotebookType != "" {
		t := entity.NotebookType(query.NotebookType)
		filter.NotebookType = &t
	}
	if query.Status != "" {
		s := entity.Status(query.Status)
		filter.Status = &s
	}
	if query.ResponsibleAnalyst != "" {
		a := entity.Analyst(query.ResponsibleAnalyst)
		filter.ResponsibleAnalyst = &a
	}
	if query.ZurichEmployee != "" {
		filter.ZurichEmployee = &query.ZurichEmployee
	}

	list, err := uc.repo.ListAll(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotebookResponse, 0, len(list))
	for _, n := range list {
		out = append(out, *dto.NewNotebookResponse(n))
	}
	return out, nil
}

// Update aplica una actualización parcial. OldNotebookID enlaza el equipo reemplazado y
// exige que ese notebook exista (semántica de connect relacional, no asignación plana).
func (uc *NotebookUseCase) Update(id int64, in dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	notebook, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, domain.NotFoundf("Notebook", id)
	}

	if in.PlaceID != nil {
		place, err := uc.placeRepo.GetByID(*in.PlaceID)
		if err != nil {
			return nil, err
		}
		if place == nil {
			return nil, domain.NotFoundf("Local", *in.PlaceID)
		}
		notebook.PlaceID = in.PlaceID
	}

	if in.OldNotebookID != nil {
		old, err := uc.repo.GetByID(*in.OldNotebookID)
		if err != nil {
			return nil, err
		}
		if old == nil {
			return nil, domain.NotFoundf("Notebook", *in.OldNotebookID)
		}
		notebook.OldNotebookID = in.OldNotebookID
	}

	if in.Hostname != nil {
		notebook.Hostname = in.Hostname
	}
	if in.Brand != nil {
		notebook.Brand = *in.Brand
	}
	if in.Model != nil {
		notebook.Model = *in.Model
	}
	if in.NotebookType != nil {
		notebook.NotebookType = entity.NotebookType(*in.NotebookType)
	}
	if in.RamConfig != nil {
		notebook.RamConfig = entity.RamConfig(*in.RamConfig)
	}
	if in.Status != nil {
		notebook.Status = entity.Status(*in.Status)
	}
	if in.ResponsibleAnalyst != nil {
		analyst := entity.Analyst(*in.ResponsibleAnalyst)
		notebook.ResponsibleAnalyst = &analyst
	}
	if in.ZurichEmployee != nil {
		notebook.ZurichEmployee = in.ZurichEmployee
	}
	notebook.UpdatedAt = time.Now()

	if err := uc.repo.Update(notebook); err != nil {
		return nil, err
	}
	return dto.NewNotebookResponse(notebook), nil
}

// Remove elimina un notebook sin movimientos asociados; el historial es inmutable, por lo
// que un notebook con movimientos no puede eliminarse.
func (uc *NotebookUseCase) Remove(id int64) error {
	notebook, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if notebook == nil {
		return domain.NotFoundf("Notebook", id)
	}

	count, err := uc.movementRepo.CountByNotebook(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflictf("Notebook posee %d movimientos asociados y no puede ser eliminado", count)
	}

	return uc.repo.Delete(id)
}

func listFilter(query dto.NotebookQuery) repository.NotebookFilter {
	filter := repository.NotebookFilter{}
	if query.Status != "" {
		s := entity.Status(query.Status)
		filter.Status = &s
	}
	if query.NotebookType != "" {
		t := entity.NotebookType(query.NotebookType)
		filter.NotebookType = &t
	}
	if query.PlaceID > 0 {
		filter.PlaceID = &query.PlaceID
	}
	if query.Search != "" {
		filter.Search = &query.Search
	}
	return filter
}

func stringOr(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}
	return def
}
