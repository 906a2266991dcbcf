package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/export"
	"github.com/tu-usuario/rollout-api/internal/application/movement"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/infrastructure/excel"
	httpRouter "github.com/tu-usuario/rollout-api/internal/interfaces/http"
	"github.com/tu-usuario/rollout-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la capa HTTP sobre app.Test de Fiber, con los casos de uso reales
// respaldados por repositorios en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func newApp(store *testutil.Store) *fiber.App {
	notebookRepo := testutil.NewNotebookRepo(store)
	placeRepo := testutil.NewPlaceRepo(store)
	movementRepo := testutil.NewMovementRepo(store)
	txRunner := testutil.NewTxRunner(store)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		NotebookUC: usecase.NewNotebookUseCase(notebookRepo, placeRepo, movementRepo),
		PlaceUC:    usecase.NewPlaceUseCase(placeRepo, notebookRepo, movementRepo),
		MovementUC: movement.NewUseCase(txRunner, notebookRepo, placeRepo, movementRepo),
		ExportUC:   export.NewUseCase(notebookRepo, movementRepo, excel.NewExporter()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPostPlace_Creada(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodPost, "/api/places", fiber.Map{"name": "Estoque"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.PlaceResponse](t, resp)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Estoque", out.Name)
	assert.True(t, out.IsActive)
}

func TestPostPlace_SinNombre(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodPost, "/api/places", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "name", out.Issues[0].Field)
}

func TestPostNotebook_EnumInvalido(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodPost, "/api/notebooks", fiber.Map{
		"serviceTag": "ABC123",
		"ramConfig":  "GB64",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "ramConfig", out.Issues[0].Field)
}

func TestPostNotebook_TagDuplicado(t *testing.T) {
	store := testutil.NewStore()
	store.SeedNotebook("ABC123", entity.StatusPendingHomologation, nil)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/notebooks", fiber.Map{"serviceTag": "ABC123"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", out.Code)
	assert.Equal(t, http.StatusConflict, out.StatusCode)
}

func TestGetNotebookPorServiceTag_NoLoCapturaLaRutaPorID(t *testing.T) {
	store := testutil.NewStore()
	store.SeedNotebook("ABC123", entity.StatusPendingHomologation, nil)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/notebooks/service-tag/ABC123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.NotebookResponse](t, resp)
	assert.Equal(t, "ABC123", out.ServiceTag)
}

func TestGetNotebookInventory(t *testing.T) {
	store := testutil.NewStore()
	sala := store.SeedPlace("Sala 101")
	store.SeedNotebook("A1", entity.StatusDelivered, &sala)
	store.SeedNotebook("A2", entity.StatusPendingHomologation, &sala)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/notebooks/inventory?status=DELIVERED", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[[]dto.NotebookResponse](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, "A1", out[0].ServiceTag)
}

func TestGetNotebooks_Paginado(t *testing.T) {
	store := testutil.NewStore()
	for _, tag := range []string{"A1", "A2", "A3"} {
		store.SeedNotebook(tag, entity.StatusPendingHomologation, nil)
	}
	app := newApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/notebooks?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.PaginatedNotebooksResponse](t, resp)
	assert.Equal(t, int64(3), out.Total)
	assert.Equal(t, 2, out.TotalPages)
	assert.Len(t, out.Data, 2)
}

func TestGetNotebooks_SortInvalido(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodGet, "/api/notebooks?sortBy=password", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
}

func TestPostMovement_FlujoCompleto(t *testing.T) {
	store := testutil.NewStore()
	stock := store.SeedPlace("Estoque")
	sala := store.SeedPlace("Sala 101")
	notebookID := store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", fiber.Map{
		"notebookId":     notebookID,
		"originPlaceId":  stock,
		"destinyPlaceId": sala,
		"previousStatus": "HOMOLOGATED",
		"newStatus":      "DELIVERED",
		"analyst":        "BRUNO",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	mov := decodeBody[dto.MovementResponse](t, resp)
	assert.Equal(t, "DELIVERED", mov.NewStatus)
	require.NotNil(t, mov.DestinyPlace)
	assert.Equal(t, "Sala 101", mov.DestinyPlace.Name)

	// La proyección del notebook queda visible por la API.
	resp = doJSON(t, app, http.MethodGet, "/api/notebooks/ABC123", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode) // :id no numérico

	resp = doJSON(t, app, http.MethodGet, "/api/notebooks/service-tag/ABC123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nb := decodeBody[dto.NotebookResponse](t, resp)
	assert.Equal(t, "DELIVERED", nb.Status)
	require.NotNil(t, nb.PlaceID)
	assert.Equal(t, sala, *nb.PlaceID)
	require.NotNil(t, nb.LastMovement)
	assert.Equal(t, mov.ID, nb.LastMovement.ID)
}

func TestPostMovement_NotebookInexistente(t *testing.T) {
	store := testutil.NewStore()
	stock := store.SeedPlace("Estoque")
	sala := store.SeedPlace("Sala 101")
	app := newApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", fiber.Map{
		"notebookId":     999,
		"originPlaceId":  stock,
		"destinyPlaceId": sala,
		"previousStatus": "HOMOLOGATED",
		"newStatus":      "DELIVERED",
		"analyst":        "BRUNO",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Contains(t, out.Message, "Notebook")
}

func TestPostMovement_AnalistaInvalido(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodPost, "/api/movements", fiber.Map{
		"notebookId":     1,
		"originPlaceId":  1,
		"destinyPlaceId": 2,
		"previousStatus": "HOMOLOGATED",
		"newStatus":      "DELIVERED",
		"analyst":        "CARLOS",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "analyst", out.Issues[0].Field)
}

func TestPostMovementByServiceTag(t *testing.T) {
	store := testutil.NewStore()
	stock := store.SeedPlace("Estoque")
	sala := store.SeedPlace("Sala de Homologação")
	store.SeedNotebook("DEF456", entity.StatusPendingHomologation, &stock)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/by-service-tag", fiber.Map{
		"serviceTag":     "DEF456",
		"originPlaceId":  stock,
		"destinyPlaceId": sala,
		"previousStatus": "PENDING_HOMOLOGATION",
		"newStatus":      "IN_HOMOLOGATION",
		"analyst":        "DANIEL",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.MovementResponse](t, resp)
	assert.Equal(t, "IN_HOMOLOGATION", out.NewStatus)
}

func TestGetMovementsDeNotebook(t *testing.T) {
	store := testutil.NewStore()
	stock := store.SeedPlace("Estoque")
	sala := store.SeedPlace("Sala 101")
	notebookID := store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)
	app := newApp(store)

	for _, status := range []string{"DELIVERED", "RETURNED"} {
		resp := doJSON(t, app, http.MethodPost, "/api/movements", fiber.Map{
			"notebookId":     notebookID,
			"originPlaceId":  stock,
			"destinyPlaceId": sala,
			"previousStatus": "HOMOLOGATED",
			"newStatus":      status,
			"analyst":        "THIAGO",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/movements/notebook/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[[]dto.MovementResponse](t, resp)
	assert.Len(t, out, 2)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/service-tag/ABC123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decodeBody[[]dto.MovementResponse](t, resp)
	assert.Len(t, out, 2)
}

func TestDeletePlace_ConNotebooks(t *testing.T) {
	store := testutil.NewStore()
	placeID := store.SeedPlace("Sala 101")
	store.SeedNotebook("ABC123", entity.StatusDelivered, &placeID)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodDelete, "/api/places/1", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", out.Code)
	assert.Contains(t, out.Message, "notebooks asociados")
}

func TestDeleteNotebook_SinMovimientos(t *testing.T) {
	store := testutil.NewStore()
	store.SeedNotebook("ABC123", entity.StatusPendingHomologation, nil)
	app := newApp(store)

	resp := doJSON(t, app, http.MethodDelete, "/api/notebooks/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestGetExportNotebooks(t *testing.T) {
	store := testutil.NewStore()
	sala := store.SeedPlace("Sala 101")
	store.SeedNotebook("ABC123", entity.StatusDelivered, &sala)
	app := newApp(store)

	for _, path := range []string{"/api/export/notebooks", "/api/export/excel"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, export.ContentTypeXLSX, resp.Header.Get(fiber.HeaderContentType))
		disposition := resp.Header.Get(fiber.HeaderContentDisposition)
		assert.Contains(t, disposition, "attachment")
		assert.Contains(t, disposition, "notebooks-export-")
		assert.Contains(t, disposition, ".xlsx")

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.NotEmpty(t, raw)
	}
}

func TestGetNotebook_IDInvalido(t *testing.T) {
	app := newApp(testutil.NewStore())

	resp := doJSON(t, app, http.MethodGet, "/api/notebooks/0", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", out.Code)
}
