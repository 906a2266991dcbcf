package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/infrastructure/excel"
	"github.com/xuri/excelize/v2"
)

func TestBuild_LibroLegible(t *testing.T) {
	hostname := "NB-ABC123"
	analyst := entity.AnalystBruno
	obs := "entrega piso 1"
	created := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	notebooks := []*entity.Notebook{
		{
			ID:                 1,
			ServiceTag:         "ABC123",
			Hostname:           &hostname,
			Brand:              "Dell",
			Model:              "5450",
			NotebookType:       entity.NotebookTypeNew,
			RamConfig:          entity.RamConfigGB16,
			Status:             entity.StatusDelivered,
			ResponsibleAnalyst: &analyst,
			CreatedAt:          created,
			UpdatedAt:          created,
			Place:              &entity.Place{ID: 2, Name: "Sala 101"},
		},
		// Notebook con todos los opcionales en nil.
		{
			ID:           2,
			ServiceTag:   "DEF456",
			Brand:        "Dell",
			Model:        "5450",
			NotebookType: entity.NotebookTypeOld,
			RamConfig:    entity.RamConfigOther,
			Status:       entity.StatusPendingHomologation,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}
	movements := []*entity.Movement{
		{
			ID:             7,
			NotebookID:     1,
			OriginPlaceID:  1,
			DestinyPlaceID: 2,
			PreviousStatus: entity.StatusHomologated,
			NewStatus:      entity.StatusDelivered,
			Analyst:        entity.AnalystBruno,
			Observation:    &obs,
			CreatedAt:      created,
			Notebook:       notebooks[0],
			OriginPlace:    &entity.Place{ID: 1, Name: "Estoque"},
			DestinyPlace:   &entity.Place{ID: 2, Name: "Sala 101"},
		},
	}

	content, err := excel.NewExporter().Build(notebooks, movements)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Notebooks", "Movements"}, f.GetSheetList())

	rows, err := f.GetRows("Notebooks")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Service Tag", rows[0][1])
	assert.Equal(t, "ABC123", rows[1][1])
	assert.Equal(t, "Sala 101", rows[1][8])
	assert.Equal(t, "BRUNO", rows[1][9])
	assert.Equal(t, "DEF456", rows[2][1])

	rows, err = f.GetRows("Movements")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Origin Place", rows[0][3])
	assert.Equal(t, "ABC123", rows[1][2])
	assert.Equal(t, "Estoque", rows[1][3])
	assert.Equal(t, "Sala 101", rows[1][4])
	assert.Equal(t, "DELIVERED", rows[1][6])
	assert.Equal(t, "entrega piso 1", rows[1][8])
}

func TestBuild_SinDatos(t *testing.T) {
	content, err := excel.NewExporter().Build(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Notebooks")
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo la cabecera
}
