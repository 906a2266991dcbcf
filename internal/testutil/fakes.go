// Package testutil provee dobles en memoria de los puertos de persistencia,
// con la misma semántica observable que los repositorios PostgreSQL (unicidad,
// orden de listados, carga de relaciones) para usarlos en tests de casos de uso
// y de handlers sin base de datos.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

// Store estado compartido por los repos fake.
type Store struct {
	mu sync.Mutex

	notebooks map[int64]*entity.Notebook
	places    map[int64]*entity.Place
	movements map[int64]*entity.Movement

	nextNotebookID int64
	nextPlaceID    int64
	nextMovementID int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		notebooks: make(map[int64]*entity.Notebook),
		places:    make(map[int64]*entity.Place),
		movements: make(map[int64]*entity.Movement),
	}
}

// SeedPlace inserta una ubicación directamente y devuelve su ID.
func (s *Store) SeedPlace(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPlaceID++
	now := time.Now()
	s.places[s.nextPlaceID] = &entity.Place{
		ID:        s.nextPlaceID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.nextPlaceID
}

// SeedNotebook inserta un notebook directamente y devuelve su ID.
func (s *Store) SeedNotebook(serviceTag string, status entity.Status, placeID *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextNotebookID++
	now := time.Now()
	s.notebooks[s.nextNotebookID] = &entity.Notebook{
		ID:           s.nextNotebookID,
		ServiceTag:   serviceTag,
		Brand:        "Dell",
		Model:        "5450",
		NotebookType: entity.NotebookTypeNew,
		RamConfig:    entity.RamConfigGB16,
		Status:       status,
		PlaceID:      placeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.nextNotebookID
}

// MovementCount cantidad de movimientos almacenados.
func (s *Store) MovementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// NotebookByID copia del notebook almacenado, o nil.
func (s *Store) NotebookByID(id int64) *entity.Notebook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneNotebook(s.notebooks[id])
}

func cloneNotebook(n *entity.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func clonePlace(p *entity.Place) *entity.Place {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// ─────────────────────────────────────────────────────────────────────────────
// NotebookRepo
// ─────────────────────────────────────────────────────────────────────────────

// NotebookRepo fake en memoria de repository.NotebookRepository.
// FailSetStatus permite forzar el fallo de SetStatusAndPlace para probar rollback.
type NotebookRepo struct {
	store         *Store
	FailSetStatus error
}

var _ repository.NotebookRepository = (*NotebookRepo)(nil)

// NewNotebookRepo construye el fake sobre el almacén.
func NewNotebookRepo(store *Store) *NotebookRepo {
	return &NotebookRepo{store: store}
}

func (r *NotebookRepo) Create(notebook *entity.Notebook) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notebooks {
		if n.ServiceTag == notebook.ServiceTag {
			return domain.Conflictf("Notebook con service tag %s ya existe", notebook.ServiceTag)
		}
	}
	s.nextNotebookID++
	notebook.ID = s.nextNotebookID
	s.notebooks[notebook.ID] = cloneNotebook(notebook)
	return nil
}

func (r *NotebookRepo) GetByID(id int64) (*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneNotebook(s.notebooks[id]), nil
}

func (r *NotebookRepo) GetByServiceTag(serviceTag string) (*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notebooks {
		if n.ServiceTag == serviceTag {
			return cloneNotebook(n), nil
		}
	}
	return nil, nil
}

func (r *NotebookRepo) GetDetailByID(id int64) (*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail(s.notebooks[id]), nil
}

func (r *NotebookRepo) GetDetailByServiceTag(serviceTag string) (*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notebooks {
		if n.ServiceTag == serviceTag {
			return s.detail(n), nil
		}
	}
	return nil, nil
}

// detail carga lugar actual y último movimiento, como el SELECT con LATERAL del repo real.
func (s *Store) detail(n *entity.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	out := cloneNotebook(n)
	if n.PlaceID != nil {
		out.Place = clonePlace(s.places[*n.PlaceID])
	}
	out.LastMovement = s.latestMovement(n.ID)
	return out
}

func (s *Store) latestMovement(notebookID int64) *entity.Movement {
	var latest *entity.Movement
	for _, m := range s.movements {
		if m.NotebookID != notebookID {
			continue
		}
		if latest == nil || m.CreatedAt.After(latest.CreatedAt) ||
			(m.CreatedAt.Equal(latest.CreatedAt) && m.ID > latest.ID) {
			latest = m
		}
	}
	out := cloneMovement(latest)
	if out != nil {
		out.OriginPlace = clonePlace(s.places[out.OriginPlaceID])
		out.DestinyPlace = clonePlace(s.places[out.DestinyPlaceID])
	}
	return out
}

func matchesFilter(n *entity.Notebook, f repository.NotebookFilter) bool {
	if f.Status != nil && n.Status != *f.Status {
		return false
	}
	if f.NotebookType != nil && n.NotebookType != *f.NotebookType {
		return false
	}
	if f.PlaceID != nil && (n.PlaceID == nil || *n.PlaceID != *f.PlaceID) {
		return false
	}
	if f.ResponsibleAnalyst != nil && (n.ResponsibleAnalyst == nil || *n.ResponsibleAnalyst != *f.ResponsibleAnalyst) {
		return false
	}
	if f.ZurichEmployee != nil {
		if n.ZurichEmployee == nil || !containsFold(*n.ZurichEmployee, *f.ZurichEmployee) {
			return false
		}
	}
	if f.Search != nil {
		q := *f.Search
		hostname := ""
		if n.Hostname != nil {
			hostname = *n.Hostname
		}
		employee := ""
		if n.ZurichEmployee != nil {
			employee = *n.ZurichEmployee
		}
		if !containsFold(n.ServiceTag, q) && !containsFold(hostname, q) && !containsFold(employee, q) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Store) filtered(f repository.NotebookFilter) []*entity.Notebook {
	var out []*entity.Notebook
	for _, n := range s.notebooks {
		if matchesFilter(n, f) {
			out = append(out, s.detail(n))
		}
	}
	return out
}

func (r *NotebookRepo) List(filter repository.NotebookFilter, page repository.NotebookPage) ([]*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.filtered(filter)
	sortNotebooks(out, page.SortBy, page.SortOrder)
	if page.Offset >= len(out) {
		return []*entity.Notebook{}, nil
	}
	out = out[page.Offset:]
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

func sortNotebooks(list []*entity.Notebook, sortBy, sortOrder string) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		var less bool
		switch sortBy {
		case "serviceTag":
			less = a.ServiceTag < b.ServiceTag
		case "status":
			less = a.Status < b.Status
		case "updatedAt":
			less = a.UpdatedAt.Before(b.UpdatedAt)
		default: // createdAt
			if a.CreatedAt.Equal(b.CreatedAt) {
				less = a.ID < b.ID
			} else {
				less = a.CreatedAt.Before(b.CreatedAt)
			}
		}
		if sortOrder == "desc" {
			return !less
		}
		return less
	})
}

func (r *NotebookRepo) Count(filter repository.NotebookFilter) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, n := range s.notebooks {
		if matchesFilter(n, filter) {
			count++
		}
	}
	return count, nil
}

func (r *NotebookRepo) ListAll(filter repository.NotebookFilter) ([]*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.filtered(filter)
	sortNotebooks(out, "createdAt", "desc")
	return out, nil
}

func (r *NotebookRepo) Update(notebook *entity.Notebook) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notebooks[notebook.ID]; !ok {
		return domain.NotFoundf("Notebook", notebook.ID)
	}
	s.notebooks[notebook.ID] = cloneNotebook(notebook)
	return nil
}

func (r *NotebookRepo) SetStatusAndPlace(id int64, status entity.Status, placeID int64, updatedAt time.Time) error {
	if r.FailSetStatus != nil {
		return r.FailSetStatus
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notebooks[id]
	if !ok {
		return domain.NotFoundf("Notebook", id)
	}
	n.Status = status
	n.PlaceID = &placeID
	n.UpdatedAt = updatedAt
	return nil
}

func (r *NotebookRepo) Delete(id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notebooks, id)
	return nil
}

func (r *NotebookRepo) CountByPlace(placeID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, n := range s.notebooks {
		if n.PlaceID != nil && *n.PlaceID == placeID {
			count++
		}
	}
	return count, nil
}

func (r *NotebookRepo) ListByPlace(placeID int64) ([]*entity.Notebook, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Notebook
	for _, n := range s.notebooks {
		if n.PlaceID != nil && *n.PlaceID == placeID {
			out = append(out, cloneNotebook(n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceTag < out[j].ServiceTag })
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// PlaceRepo
// ─────────────────────────────────────────────────────────────────────────────

// PlaceRepo fake en memoria de repository.PlaceRepository.
type PlaceRepo struct {
	store *Store
}

var _ repository.PlaceRepository = (*PlaceRepo)(nil)

// NewPlaceRepo construye el fake sobre el almacén.
func NewPlaceRepo(store *Store) *PlaceRepo {
	return &PlaceRepo{store: store}
}

func (r *PlaceRepo) Create(place *entity.Place) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.places {
		if p.Name == place.Name {
			return domain.Conflictf("Local con nombre '%s' ya existe", place.Name)
		}
	}
	s.nextPlaceID++
	place.ID = s.nextPlaceID
	s.places[place.ID] = clonePlace(place)
	return nil
}

func (r *PlaceRepo) GetByID(id int64) (*entity.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlace(s.places[id]), nil
}

func (r *PlaceRepo) List() ([]*entity.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Place, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, clonePlace(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PlaceRepo) Update(place *entity.Place) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.places[place.ID]; !ok {
		return domain.NotFoundf("Local", place.ID)
	}
	for _, p := range s.places {
		if p.ID != place.ID && p.Name == place.Name {
			return domain.Conflictf("Local con nombre '%s' ya existe", place.Name)
		}
	}
	s.places[place.ID] = clonePlace(place)
	return nil
}

func (r *PlaceRepo) Delete(id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.places, id)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MovementRepo
// ─────────────────────────────────────────────────────────────────────────────

// MovementRepo fake en memoria de repository.MovementRepository.
type MovementRepo struct {
	store *Store
}

var _ repository.MovementRepository = (*MovementRepo)(nil)

// NewMovementRepo construye el fake sobre el almacén.
func NewMovementRepo(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

func (r *MovementRepo) Create(movement *entity.Movement) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMovementID++
	movement.ID = s.nextMovementID
	stored := cloneMovement(movement)
	stored.Notebook, stored.OriginPlace, stored.DestinyPlace = nil, nil, nil
	s.movements[movement.ID] = stored
	return nil
}

func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.movements[id]
	if m == nil {
		return nil, nil
	}
	return s.withRelations(m), nil
}

func (s *Store) withRelations(m *entity.Movement) *entity.Movement {
	out := cloneMovement(m)
	out.Notebook = cloneNotebook(s.notebooks[m.NotebookID])
	out.OriginPlace = clonePlace(s.places[m.OriginPlaceID])
	out.DestinyPlace = clonePlace(s.places[m.DestinyPlaceID])
	return out
}

func (s *Store) sortedMovements(filter func(*entity.Movement) bool) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range s.movements {
		if filter(m) {
			out = append(out, s.withRelations(m))
		}
	}
	// Más recientes primero, como el ORDER BY created_at DESC, id DESC del repo real.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MovementRepo) List() ([]*entity.Movement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMovements(func(*entity.Movement) bool { return true }), nil
}

func (r *MovementRepo) ListByNotebook(notebookID int64) ([]*entity.Movement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMovements(func(m *entity.Movement) bool { return m.NotebookID == notebookID }), nil
}

func (r *MovementRepo) LatestByNotebook(notebookID int64) (*entity.Movement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestMovement(notebookID), nil
}

func (r *MovementRepo) CountByNotebook(notebookID int64) (int64, error) {
	return r.countWhere(func(m *entity.Movement) bool { return m.NotebookID == notebookID })
}

func (r *MovementRepo) CountByOrigin(placeID int64) (int64, error) {
	return r.countWhere(func(m *entity.Movement) bool { return m.OriginPlaceID == placeID })
}

func (r *MovementRepo) CountByDestiny(placeID int64) (int64, error) {
	return r.countWhere(func(m *entity.Movement) bool { return m.DestinyPlaceID == placeID })
}

func (r *MovementRepo) countWhere(match func(*entity.Movement) bool) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, m := range s.movements {
		if match(m) {
			count++
		}
	}
	return count, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// TxRunner
// ─────────────────────────────────────────────────────────────────────────────

// TxRunner fake con semántica de rollback: si fn devuelve error, el almacén
// vuelve al estado previo a la transacción.
type TxRunner struct {
	store        *Store
	NotebookRepo *NotebookRepo
	MovementRepo *MovementRepo
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{
		store:        store,
		NotebookRepo: NewNotebookRepo(store),
		MovementRepo: NewMovementRepo(store),
	}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	notebookRepo repository.NotebookRepository,
) error) error {
	snapshot := r.store.snapshot()
	if err := fn(r.MovementRepo, r.NotebookRepo); err != nil {
		r.store.restore(snapshot)
		return err
	}
	return nil
}

type storeSnapshot struct {
	notebooks      map[int64]*entity.Notebook
	movements      map[int64]*entity.Movement
	nextNotebookID int64
	nextMovementID int64
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		notebooks:      make(map[int64]*entity.Notebook, len(s.notebooks)),
		movements:      make(map[int64]*entity.Movement, len(s.movements)),
		nextNotebookID: s.nextNotebookID,
		nextMovementID: s.nextMovementID,
	}
	for id, n := range s.notebooks {
		snap.notebooks[id] = cloneNotebook(n)
	}
	for id, m := range s.movements {
		snap.movements[id] = cloneMovement(m)
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notebooks = snap.notebooks
	s.movements = snap.movements
	s.nextNotebookID = snap.nextNotebookID
	s.nextMovementID = snap.nextMovementID
}
