package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/testutil"
)

func newPlaceUC(store *testutil.Store) *usecase.PlaceUseCase {
	return usecase.NewPlaceUseCase(
		testutil.NewPlaceRepo(store),
		testutil.NewNotebookRepo(store),
		testutil.NewMovementRepo(store),
	)
}

func TestPlaceCreate_ActivaPorDefecto(t *testing.T) {
	uc := newPlaceUC(testutil.NewStore())

	out, err := uc.Create(dto.CreatePlaceRequest{Name: "Estoque"})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Estoque", out.Name)
	assert.True(t, out.IsActive)
}

func TestPlaceCreate_NombreDuplicado(t *testing.T) {
	store := testutil.NewStore()
	store.SeedPlace("Estoque")
	uc := newPlaceUC(store)

	_, err := uc.Create(dto.CreatePlaceRequest{Name: "Estoque"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestPlaceFindAll_OrdenPorNombre(t *testing.T) {
	store := testutil.NewStore()
	store.SeedPlace("Sala 202")
	store.SeedPlace("Estoque")
	store.SeedPlace("Sala 101")
	uc := newPlaceUC(store)

	out, err := uc.FindAll()
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "Estoque", out[0].Name)
	assert.Equal(t, "Sala 101", out[1].Name)
	assert.Equal(t, "Sala 202", out[2].Name)
}

func TestPlaceFindOne_IncluyeNotebooks(t *testing.T) {
	store := testutil.NewStore()
	placeID := store.SeedPlace("Sala 101")
	store.SeedNotebook("ABC123", entity.StatusDelivered, &placeID)
	store.SeedNotebook("DEF456", entity.StatusDelivered, &placeID)
	store.SeedNotebook("GHI789", entity.StatusPendingHomologation, nil)
	uc := newPlaceUC(store)

	out, err := uc.FindOne(placeID)
	require.NoError(t, err)

	require.Len(t, out.Notebooks, 2)
	assert.Equal(t, "ABC123", out.Notebooks[0].ServiceTag)
	assert.Equal(t, "DEF456", out.Notebooks[1].ServiceTag)
}

func TestPlaceFindOne_Inexistente(t *testing.T) {
	uc := newPlaceUC(testutil.NewStore())

	_, err := uc.FindOne(99)
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Local", nf.Resource)
}

func TestPlaceUpdate_Parcial(t *testing.T) {
	store := testutil.NewStore()
	placeID := store.SeedPlace("Sala 101")
	uc := newPlaceUC(store)

	inactive := false
	out, err := uc.Update(placeID, dto.UpdatePlaceRequest{IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, "Sala 101", out.Name)
	assert.False(t, out.IsActive)
}

func TestPlaceRemove_ConNotebooksEsConflicto(t *testing.T) {
	store := testutil.NewStore()
	placeID := store.SeedPlace("Sala 101")
	store.SeedNotebook("ABC123", entity.StatusDelivered, &placeID)
	store.SeedNotebook("DEF456", entity.StatusDelivered, &placeID)
	uc := newPlaceUC(store)

	err := uc.Remove(placeID)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "2 notebooks asociados")
}

func TestPlaceRemove_ConMovimientosEsConflicto(t *testing.T) {
	store := testutil.NewStore()
	stock := store.SeedPlace("Estoque")
	sala := store.SeedPlace("Sala 101")
	descarte := store.SeedPlace("Descarte")
	notebookID := store.SeedNotebook("ABC123", entity.StatusDelivered, &descarte)

	movRepo := testutil.NewMovementRepo(store)
	require.NoError(t, movRepo.Create(&entity.Movement{
		NotebookID:     notebookID,
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: entity.StatusHomologated,
		NewStatus:      entity.StatusDelivered,
		Analyst:        entity.AnalystBruno,
	}))

	uc := newPlaceUC(store)

	// Sin notebooks presentes pero referenciado como origen.
	err := uc.Remove(stock)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "origen: 1")

	// Referenciado como destino.
	err = uc.Remove(sala)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "destino: 1")
}

func TestPlaceRemove_SinReferencias(t *testing.T) {
	store := testutil.NewStore()
	placeID := store.SeedPlace("Sala vacía")
	uc := newPlaceUC(store)

	require.NoError(t, uc.Remove(placeID))

	_, err := uc.FindOne(placeID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
