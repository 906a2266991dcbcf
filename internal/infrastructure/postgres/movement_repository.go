package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La tabla movements es append-only: solo INSERT y lecturas.
type MovementRepo struct {
	db db
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
// Acepta el pool o una tx (vía TxRunner) indistintamente.
func NewMovementRepository(db db) *MovementRepo {
	return &MovementRepo{db: db}
}

// Create inserta el registro de movimiento y asigna el ID generado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements
			(notebook_id, origin_place_id, destiny_place_id, previous_status, new_status, analyst, observation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		movement.NotebookID, movement.OriginPlaceID, movement.DestinyPlaceID,
		string(movement.PreviousStatus), string(movement.NewStatus), string(movement.Analyst),
		movement.Observation, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			return domain.BadRequestf("Referencia inválida: el constraint %s referencia un registro que no existe", constraint)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// movementSelect proyección con notebook y lugares de origen/destino desnormalizados.
const movementSelect = `
	SELECT m.id, m.notebook_id, m.origin_place_id, m.destiny_place_id,
	       m.previous_status, m.new_status, m.analyst, m.observation, m.created_at,
	       n.service_tag, n.hostname, n.brand, n.model, n.notebook_type, n.ram_config,
	       n.status, n.place_id, n.responsible_analyst, n.zurich_employee, n.old_notebook_id,
	       n.created_at, n.updated_at,
	       op.name, op.description, op.is_active, op.created_at, op.updated_at,
	       dp.name, dp.description, dp.is_active, dp.created_at, dp.updated_at
	FROM movements m
	JOIN notebooks n ON n.id = m.notebook_id
	JOIN places op ON op.id = m.origin_place_id
	JOIN places dp ON dp.id = m.destiny_place_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovement(row rowScanner) (*entity.Movement, error) {
	var (
		m               entity.Movement
		notebook        entity.Notebook
		origin, destiny entity.Place
		prevStatus      string
		newStatus       string
		analyst         string
		nbType, nbRam   string
		nbStatus        string
		nbAnalyst       *string
	)
	err := row.Scan(
		&m.ID, &m.NotebookID, &m.OriginPlaceID, &m.DestinyPlaceID,
		&prevStatus, &newStatus, &analyst, &m.Observation, &m.CreatedAt,
		&notebook.ServiceTag, &notebook.Hostname, &notebook.Brand, &notebook.Model,
		&nbType, &nbRam, &nbStatus, &notebook.PlaceID, &nbAnalyst,
		&notebook.ZurichEmployee, &notebook.OldNotebookID,
		&notebook.CreatedAt, &notebook.UpdatedAt,
		&origin.Name, &origin.Description, &origin.IsActive, &origin.CreatedAt, &origin.UpdatedAt,
		&destiny.Name, &destiny.Description, &destiny.IsActive, &destiny.CreatedAt, &destiny.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.PreviousStatus = entity.Status(prevStatus)
	m.NewStatus = entity.Status(newStatus)
	m.Analyst = entity.Analyst(analyst)

	notebook.ID = m.NotebookID
	notebook.NotebookType = entity.NotebookType(nbType)
	notebook.RamConfig = entity.RamConfig(nbRam)
	notebook.Status = entity.Status(nbStatus)
	if nbAnalyst != nil {
		a := entity.Analyst(*nbAnalyst)
		notebook.ResponsibleAnalyst = &a
	}
	m.Notebook = &notebook

	origin.ID = m.OriginPlaceID
	destiny.ID = m.DestinyPlaceID
	m.OriginPlace = &origin
	m.DestinyPlace = &destiny
	return &m, nil
}

// GetByID obtiene un movimiento con relaciones cargadas; nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	row := r.db.QueryRow(context.Background(), movementSelect+` WHERE m.id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List devuelve todos los movimientos, más recientes primero.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	return r.list(movementSelect + ` ORDER BY m.created_at DESC, m.id DESC`)
}

// ListByNotebook devuelve los movimientos de un notebook, más recientes primero.
func (r *MovementRepo) ListByNotebook(notebookID int64) ([]*entity.Movement, error) {
	return r.list(movementSelect+` WHERE m.notebook_id = $1 ORDER BY m.created_at DESC, m.id DESC`, notebookID)
}

// LatestByNotebook devuelve el movimiento más reciente de un notebook; nil si no tiene.
func (r *MovementRepo) LatestByNotebook(notebookID int64) (*entity.Movement, error) {
	row := r.db.QueryRow(context.Background(),
		movementSelect+` WHERE m.notebook_id = $1 ORDER BY m.created_at DESC, m.id DESC LIMIT 1`, notebookID)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest movement: %w", err)
	}
	return m, nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CountByNotebook cuenta los movimientos de un notebook (guarda de borrado).
func (r *MovementRepo) CountByNotebook(notebookID int64) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM movements WHERE notebook_id = $1`, notebookID)
}

// CountByOrigin cuenta movimientos con la ubicación como origen (guarda de borrado de lugares).
func (r *MovementRepo) CountByOrigin(placeID int64) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM movements WHERE origin_place_id = $1`, placeID)
}

// CountByDestiny cuenta movimientos con la ubicación como destino (guarda de borrado de lugares).
func (r *MovementRepo) CountByDestiny(placeID int64) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM movements WHERE destiny_place_id = $1`, placeID)
}

func (r *MovementRepo) count(query string, arg any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(context.Background(), query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
