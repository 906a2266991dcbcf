package movement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rollout-api/internal/application/dto"
	"github.com/tu-usuario/rollout-api/internal/application/movement"
	"github.com/tu-usuario/rollout-api/internal/domain"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del workflow de movimientos: el registro del movimiento y la
// actualización de la proyección status/place del notebook deben aplicarse
// juntos o no aplicarse en absoluto.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *testutil.Store
	txRunner *testutil.TxRunner
	uc       *movement.UseCase
}

func newFixture() *fixture {
	store := testutil.NewStore()
	txRunner := testutil.NewTxRunner(store)
	uc := movement.NewUseCase(
		txRunner,
		testutil.NewNotebookRepo(store),
		testutil.NewPlaceRepo(store),
		testutil.NewMovementRepo(store),
	)
	return &fixture{store: store, txRunner: txRunner, uc: uc}
}

func TestCreate_MovimientoCompleto(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)

	obs := "entrega al usuario final"
	out, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     notebookID,
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "BRUNO",
		Observation:    &obs,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, notebookID, out.NotebookID)
	assert.Equal(t, "DELIVERED", out.NewStatus)
	assert.Equal(t, "BRUNO", out.Analyst)
	require.NotNil(t, out.OriginPlace)
	assert.Equal(t, "Estoque", out.OriginPlace.Name)
	require.NotNil(t, out.DestinyPlace)
	assert.Equal(t, "Sala 101", out.DestinyPlace.Name)
	require.NotNil(t, out.Notebook)
	assert.Equal(t, "ABC123", out.Notebook.ServiceTag)

	// La proyección del notebook refleja el movimiento.
	nb := f.store.NotebookByID(notebookID)
	assert.Equal(t, entity.StatusDelivered, nb.Status)
	require.NotNil(t, nb.PlaceID)
	assert.Equal(t, sala, *nb.PlaceID)
}

func TestCreate_NotebookInexistente(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")

	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     999,
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "BRUNO",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Notebook", nf.Resource)

	// Ninguna escritura parcial.
	assert.Zero(t, f.store.MovementCount())
}

func TestCreate_OrigenInexistente(t *testing.T) {
	f := newFixture()
	sala := f.store.SeedPlace("Sala 101")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &sala)

	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     notebookID,
		OriginPlaceID:  777,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "DANIEL",
	})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Local de origen", nf.Resource)
	assert.Zero(t, f.store.MovementCount())
}

func TestCreate_DestinoInexistente(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)

	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     notebookID,
		OriginPlaceID:  stock,
		DestinyPlaceID: 888,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "THIAGO",
	})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Local de destino", nf.Resource)
	assert.Zero(t, f.store.MovementCount())
}

func TestCreate_RollbackSiFallaLaProyeccion(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)

	// El update de la proyección falla dentro de la transacción: el alta del
	// movimiento debe deshacerse.
	boom := errors.New("deadlock detected")
	f.txRunner.NotebookRepo.FailSetStatus = boom

	_, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     notebookID,
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "OSVALDO",
	})
	require.ErrorIs(t, err, boom)

	assert.Zero(t, f.store.MovementCount())
	nb := f.store.NotebookByID(notebookID)
	assert.Equal(t, entity.StatusHomologated, nb.Status)
	require.NotNil(t, nb.PlaceID)
	assert.Equal(t, stock, *nb.PlaceID)
}

func TestCreate_PreviousStatusNoSeContrastaConElActual(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")
	// El notebook está PENDING_HOMOLOGATION pero el caller declara HOMOLOGATED:
	// se acepta tal cual (carga retroactiva de historial).
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusPendingHomologation, &stock)

	out, err := f.uc.Create(context.Background(), dto.CreateMovementRequest{
		NotebookID:     notebookID,
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "IN_ROLLOUT",
		Analyst:        "BRUNO",
	})
	require.NoError(t, err)
	assert.Equal(t, "HOMOLOGATED", out.PreviousStatus)
}

func TestCreateByServiceTag(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala de Homologação")
	f.store.SeedNotebook("DEF456", entity.StatusPendingHomologation, &stock)

	out, err := f.uc.CreateByServiceTag(context.Background(), dto.CreateMovementByTagRequest{
		ServiceTag:     "DEF456",
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "PENDING_HOMOLOGATION",
		NewStatus:      "IN_HOMOLOGATION",
		Analyst:        "DANIEL",
	})
	require.NoError(t, err)
	assert.Equal(t, "IN_HOMOLOGATION", out.NewStatus)
	require.NotNil(t, out.Notebook)
	assert.Equal(t, "DEF456", out.Notebook.ServiceTag)
}

func TestCreateByServiceTag_TagInexistente(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")

	_, err := f.uc.CreateByServiceTag(context.Background(), dto.CreateMovementByTagRequest{
		ServiceTag:     "NOTFOUND999",
		OriginPlaceID:  stock,
		DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED",
		NewStatus:      "DELIVERED",
		Analyst:        "BRUNO",
	})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Notebook", nf.Resource)
	assert.Equal(t, "NOTFOUND999", nf.Identifier)
}

func TestMovimientosSecuenciales_UltimoGana(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	sala := f.store.SeedPlace("Sala 101")
	descarte := f.store.SeedPlace("Descarte")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)

	ctx := context.Background()
	_, err := f.uc.Create(ctx, dto.CreateMovementRequest{
		NotebookID: notebookID, OriginPlaceID: stock, DestinyPlaceID: sala,
		PreviousStatus: "HOMOLOGATED", NewStatus: "DELIVERED", Analyst: "BRUNO",
	})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateMovementRequest{
		NotebookID: notebookID, OriginPlaceID: sala, DestinyPlaceID: descarte,
		PreviousStatus: "DELIVERED", NewStatus: "RETURNED", Analyst: "THIAGO",
	})
	require.NoError(t, err)

	// La proyección queda en el último movimiento aplicado.
	nb := f.store.NotebookByID(notebookID)
	assert.Equal(t, entity.StatusReturned, nb.Status)
	require.NotNil(t, nb.PlaceID)
	assert.Equal(t, descarte, *nb.PlaceID)

	// El historial conserva ambos, más reciente primero.
	history, err := f.uc.FindByNotebookID(notebookID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "RETURNED", history[0].NewStatus)
	assert.Equal(t, "DELIVERED", history[1].NewStatus)
}

func TestFindOne_Inexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.FindOne(42)
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Movement", nf.Resource)
}

func TestFindByServiceTag_NotebookInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.FindByServiceTag("ZZZ000")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByNotebookID_SinMovimientos(t *testing.T) {
	f := newFixture()
	stock := f.store.SeedPlace("Estoque")
	notebookID := f.store.SeedNotebook("ABC123", entity.StatusHomologated, &stock)

	history, err := f.uc.FindByNotebookID(notebookID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
