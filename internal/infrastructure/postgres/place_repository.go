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

var _ repository.PlaceRepository = (*PlaceRepo)(nil)

// PlaceRepo implementación del puerto PlaceRepository sobre PostgreSQL.
type PlaceRepo struct {
	db db
}

// NewPlaceRepository construye el adaptador de persistencia para ubicaciones.
func NewPlaceRepository(db db) *PlaceRepo {
	return &PlaceRepo{db: db}
}

// Create persiste una nueva ubicación y asigna el ID generado.
func (r *PlaceRepo) Create(place *entity.Place) error {
	query := `
		INSERT INTO places (name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		place.Name, place.Description, place.IsActive, place.CreatedAt, place.UpdatedAt,
	).Scan(&place.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Local con nombre '%s' ya existe", place.Name)
		}
		return fmt.Errorf("insert place: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *PlaceRepo) GetByID(id int64) (*entity.Place, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM places WHERE id = $1`
	var p entity.Place
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get place: %w", err)
	}
	return &p, nil
}

// List devuelve todas las ubicaciones ordenadas por nombre.
func (r *PlaceRepo) List() ([]*entity.Place, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM places ORDER BY name ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()
	var list []*entity.Place
	for rows.Next() {
		var p entity.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación existente.
func (r *PlaceRepo) Update(place *entity.Place) error {
	query := `
		UPDATE places SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		place.ID, place.Name, place.Description, place.IsActive, place.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Local con nombre '%s' ya existe", place.Name)
		}
		return fmt.Errorf("update place: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID. Las guardas de referencias viven en el caso de uso.
func (r *PlaceRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}
