package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

var _ repository.NotebookRepository = (*NotebookRepo)(nil)

// NotebookRepo implementación del puerto NotebookRepository sobre PostgreSQL.
type NotebookRepo struct {
	db db
}

// NewNotebookRepository construye el adaptador de persistencia para notebooks.
// Acepta el pool o una tx (vía TxRunner) indistintamente.
func NewNotebookRepository(db db) *NotebookRepo {
	return &NotebookRepo{db: db}
}

const notebookColumns = `
	n.id, n.service_tag, n.hostname, n.brand, n.model, n.notebook_type, n.ram_config,
	n.status, n.place_id, n.responsible_analyst, n.zurich_employee, n.old_notebook_id,
	n.created_at, n.updated_at`

// Mapeo campo de orden de la API -> columna, para evitar interpolar entrada del usuario.
var sortColumns = map[string]string{
	"createdAt":  "n.created_at",
	"updatedAt":  "n.updated_at",
	"serviceTag": "n.service_tag",
	"hostname":   "n.hostname",
	"status":     "n.status",
}

func scanNotebook(row rowScanner) (*entity.Notebook, error) {
	var (
		n         entity.Notebook
		nbType    string
		nbRam     string
		nbStatus  string
		nbAnalyst *string
	)
	err := row.Scan(
		&n.ID, &n.ServiceTag, &n.Hostname, &n.Brand, &n.Model, &nbType, &nbRam,
		&nbStatus, &n.PlaceID, &nbAnalyst, &n.ZurichEmployee, &n.OldNotebookID,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.NotebookType = entity.NotebookType(nbType)
	n.RamConfig = entity.RamConfig(nbRam)
	n.Status = entity.Status(nbStatus)
	if nbAnalyst != nil {
		a := entity.Analyst(*nbAnalyst)
		n.ResponsibleAnalyst = &a
	}
	return &n, nil
}

// Create persiste un nuevo notebook y asigna el ID generado.
func (r *NotebookRepo) Create(notebook *entity.Notebook) error {
	query := `
		INSERT INTO notebooks
			(service_tag, hostname, brand, model, notebook_type, ram_config, status,
			 place_id, responsible_analyst, zurich_employee, old_notebook_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	var analyst *string
	if notebook.ResponsibleAnalyst != nil {
		s := string(*notebook.ResponsibleAnalyst)
		analyst = &s
	}
	err := r.db.QueryRow(context.Background(), query,
		notebook.ServiceTag, notebook.Hostname, notebook.Brand, notebook.Model,
		string(notebook.NotebookType), string(notebook.RamConfig), string(notebook.Status),
		notebook.PlaceID, analyst, notebook.ZurichEmployee, notebook.OldNotebookID,
		notebook.CreatedAt, notebook.UpdatedAt,
	).Scan(&notebook.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Notebook con service tag %s ya existe", notebook.ServiceTag)
		}
		if constraint, ok := isForeignKeyViolation(err); ok {
			return domain.BadRequestf("Referencia inválida: el constraint %s referencia un registro que no existe", constraint)
		}
		return fmt.Errorf("insert notebook: %w", err)
	}
	return nil
}

// GetByID obtiene un notebook por ID, sin relaciones; nil si no existe.
func (r *NotebookRepo) GetByID(id int64) (*entity.Notebook, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT`+notebookColumns+` FROM notebooks n WHERE n.id = $1`, id)
	n, err := scanNotebook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notebook: %w", err)
	}
	return n, nil
}

// GetByServiceTag obtiene un notebook por su service tag, sin relaciones; nil si no existe.
func (r *NotebookRepo) GetByServiceTag(serviceTag string) (*entity.Notebook, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT`+notebookColumns+` FROM notebooks n WHERE n.service_tag = $1`, serviceTag)
	n, err := scanNotebook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notebook by service tag: %w", err)
	}
	return n, nil
}

// detailSelect proyección con lugar actual y último movimiento (lateral) cargados.
const detailSelect = `
	SELECT` + notebookColumns + `,
	       p.name, p.description, p.is_active, p.created_at, p.updated_at,
	       lm.id, lm.origin_place_id, lm.destiny_place_id, lm.previous_status,
	       lm.new_status, lm.analyst, lm.observation, lm.created_at,
	       lop.name, ldp.name
	FROM notebooks n
	LEFT JOIN places p ON p.id = n.place_id
	LEFT JOIN LATERAL (
		SELECT m.id, m.origin_place_id, m.destiny_place_id, m.previous_status,
		       m.new_status, m.analyst, m.observation, m.created_at
		FROM movements m
		WHERE m.notebook_id = n.id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT 1
	) lm ON true
	LEFT JOIN places lop ON lop.id = lm.origin_place_id
	LEFT JOIN places ldp ON ldp.id = lm.destiny_place_id`

func scanNotebookDetail(row rowScanner) (*entity.Notebook, error) {
	var (
		n         entity.Notebook
		nbType    string
		nbRam     string
		nbStatus  string
		nbAnalyst *string

		pName        *string
		pDescription *string
		pIsActive    *bool
		pCreatedAt   *time.Time
		pUpdatedAt   *time.Time

		lmID          *int64
		lmOrigin      *int64
		lmDestiny     *int64
		lmPrevStatus  *string
		lmNewStatus   *string
		lmAnalyst     *string
		lmObservation *string
		lmCreatedAt   *time.Time
		lmOriginName  *string
		lmDestinyName *string
	)
	err := row.Scan(
		&n.ID, &n.ServiceTag, &n.Hostname, &n.Brand, &n.Model, &nbType, &nbRam,
		&nbStatus, &n.PlaceID, &nbAnalyst, &n.ZurichEmployee, &n.OldNotebookID,
		&n.CreatedAt, &n.UpdatedAt,
		&pName, &pDescription, &pIsActive, &pCreatedAt, &pUpdatedAt,
		&lmID, &lmOrigin, &lmDestiny, &lmPrevStatus,
		&lmNewStatus, &lmAnalyst, &lmObservation, &lmCreatedAt,
		&lmOriginName, &lmDestinyName,
	)
	if err != nil {
		return nil, err
	}
	n.NotebookType = entity.NotebookType(nbType)
	n.RamConfig = entity.RamConfig(nbRam)
	n.Status = entity.Status(nbStatus)
	if nbAnalyst != nil {
		a := entity.Analyst(*nbAnalyst)
		n.ResponsibleAnalyst = &a
	}
	if n.PlaceID != nil && pName != nil {
		n.Place = &entity.Place{
			ID:          *n.PlaceID,
			Name:        *pName,
			Description: pDescription,
			IsActive:    *pIsActive,
			CreatedAt:   *pCreatedAt,
			UpdatedAt:   *pUpdatedAt,
		}
	}
	if lmID != nil {
		lm := &entity.Movement{
			ID:             *lmID,
			NotebookID:     n.ID,
			OriginPlaceID:  *lmOrigin,
			DestinyPlaceID: *lmDestiny,
			PreviousStatus: entity.Status(*lmPrevStatus),
			NewStatus:      entity.Status(*lmNewStatus),
			Analyst:        entity.Analyst(*lmAnalyst),
			Observation:    lmObservation,
			CreatedAt:      *lmCreatedAt,
		}
		if lmOriginName != nil {
			lm.OriginPlace = &entity.Place{ID: *lmOrigin, Name: *lmOriginName}
		}
		if lmDestinyName != nil {
			lm.DestinyPlace = &entity.Place{ID: *lmDestiny, Name: *lmDestinyName}
		}
		n.LastMovement = lm
	}
	return &n, nil
}

// GetDetailByID obtiene un notebook con lugar actual y último movimiento; nil si no existe.
func (r *NotebookRepo) GetDetailByID(id int64) (*entity.Notebook, error) {
	row := r.db.QueryRow(context.Background(), detailSelect+` WHERE n.id = $1`, id)
	n, err := scanNotebookDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notebook detail: %w", err)
	}
	return n, nil
}

// GetDetailByServiceTag versión por service tag de GetDetailByID.
func (r *NotebookRepo) GetDetailByServiceTag(serviceTag string) (*entity.Notebook, error) {
	row := r.db.QueryRow(context.Background(), detailSelect+` WHERE n.service_tag = $1`, serviceTag)
	n, err := scanNotebookDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notebook detail by service tag: %w", err)
	}
	return n, nil
}

// List devuelve una página de notebooks con lugar y último movimiento cargados.
func (r *NotebookRepo) List(filter repository.NotebookFilter, page repository.NotebookPage) ([]*entity.Notebook, error) {
	where, args := buildNotebookWhere(filter)

	sortCol, ok := sortColumns[page.SortBy]
	if !ok {
		sortCol = "n.created_at"
	}
	order := "DESC"
	if strings.EqualFold(page.SortOrder, "asc") {
		order = "ASC"
	}

	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		detailSelect, where, sortCol, order, len(args)-1, len(args))

	return r.listDetail(query, args...)
}

// Count cuenta los notebooks que cumplen el filtro.
func (r *NotebookRepo) Count(filter repository.NotebookFilter) (int64, error) {
	where, args := buildNotebookWhere(filter)
	var n int64
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notebooks n`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count notebooks: %w", err)
	}
	return n, nil
}

// ListAll devuelve todos los notebooks que cumplen el filtro, sin paginar.
func (r *NotebookRepo) ListAll(filter repository.NotebookFilter) ([]*entity.Notebook, error) {
	where, args := buildNotebookWhere(filter)
	return r.listDetail(detailSelect+where+` ORDER BY n.created_at DESC, n.id DESC`, args...)
}

func (r *NotebookRepo) listDetail(query string, args ...any) ([]*entity.Notebook, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notebook
	for rows.Next() {
		n, err := scanNotebookDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notebook: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un notebook.
func (r *NotebookRepo) Update(notebook *entity.Notebook) error {
	query := `
		UPDATE notebooks SET
			hostname = $2, brand = $3, model = $4, notebook_type = $5, ram_config = $6,
			status = $7, place_id = $8, responsible_analyst = $9, zurich_employee = $10,
			old_notebook_id = $11, updated_at = $12
		WHERE id = $1`
	var analyst *string
	if notebook.ResponsibleAnalyst != nil {
		s := string(*notebook.ResponsibleAnalyst)
		analyst = &s
	}
	_, err := r.db.Exec(context.Background(), query,
		notebook.ID, notebook.Hostname, notebook.Brand, notebook.Model,
		string(notebook.NotebookType), string(notebook.RamConfig), string(notebook.Status),
		notebook.PlaceID, analyst, notebook.ZurichEmployee, notebook.OldNotebookID,
		notebook.UpdatedAt,
	)
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok {
			return domain.BadRequestf("Referencia inválida: el constraint %s referencia un registro que no existe", constraint)
		}
		return fmt.Errorf("update notebook: %w", err)
	}
	return nil
}

// SetStatusAndPlace actualiza solo la proyección estado/lugar del notebook.
// Lo invoca el workflow de movimientos dentro de su transacción.
func (r *NotebookRepo) SetStatusAndPlace(id int64, status entity.Status, placeID int64, updatedAt time.Time) error {
	query := `UPDATE notebooks SET status = $2, place_id = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, string(status), placeID, updatedAt)
	if err != nil {
		return fmt.Errorf("update notebook status/place: %w", err)
	}
	return nil
}

// Delete elimina un notebook. La guarda de movimientos asociados vive en el caso de uso;
// la traducción del FK es el respaldo ante una carrera.
func (r *NotebookRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM notebooks WHERE id = $1`, id)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			return domain.Conflictf("Notebook posee movimientos asociados y no puede ser eliminado")
		}
		return fmt.Errorf("delete notebook: %w", err)
	}
	return nil
}

// CountByPlace cuenta los notebooks actualmente en una ubicación.
func (r *NotebookRepo) CountByPlace(placeID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notebooks WHERE place_id = $1`, placeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count notebooks by place: %w", err)
	}
	return n, nil
}

// ListByPlace devuelve los notebooks actualmente en una ubicación.
func (r *NotebookRepo) ListByPlace(placeID int64) ([]*entity.Notebook, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT`+notebookColumns+` FROM notebooks n WHERE n.place_id = $1 ORDER BY n.service_tag ASC`, placeID)
	if err != nil {
		return nil, fmt.Errorf("list notebooks by place: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notebook
	for rows.Next() {
		n, err := scanNotebook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notebook: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// buildNotebookWhere arma la cláusula WHERE parametrizada a partir del filtro.
func buildNotebookWhere(filter repository.NotebookFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != nil {
		add("n.status = $%d", string(*filter.Status))
	}
	if filter.NotebookType != nil {
		add("n.notebook_type = $%d", string(*filter.NotebookType))
	}
	if filter.PlaceID != nil {
		add("n.place_id = $%d", *filter.PlaceID)
	}
	if filter.ResponsibleAnalyst != nil {
		add("n.responsible_analyst = $%d", string(*filter.ResponsibleAnalyst))
	}
	if filter.ZurichEmployee != nil {
		add("n.zurich_employee ILIKE $%d", "%"+*filter.ZurichEmployee+"%")
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		i := len(args)
		conds = append(conds, fmt.Sprintf(
			"(n.service_tag ILIKE $%d OR n.hostname ILIKE $%d OR n.zurich_employee ILIKE $%d)", i, i, i))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
