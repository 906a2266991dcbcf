package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/rollout-api/internal/application/export"
	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/pkg/timeutil"
)

var _ export.SpreadsheetBuilder = (*Exporter)(nil)

const (
	sheetNotebooks = "Notebooks"
	sheetMovements = "Movements"
)

var notebookColumns = []struct {
	header string
	width  float64
}{
	{"ID", 10},
	{"Service Tag", 20},
	{"Hostname", 20},
	{"Brand", 15},
	{"Model", 15},
	{"Type", 15},
	{"RAM", 15},
	{"Status", 20},
	{"Location", 20},
	{"Analyst", 15},
	{"Employee", 30},
	{"Created At", 20},
	{"Updated At", 20},
}

var movementColumns = []struct {
	header string
	width  float64
}{
	{"ID", 10},
	{"Notebook ID", 15},
	{"Service Tag", 20},
	{"Origin Place", 20},
	{"Destiny Place", 20},
	{"Previous Status", 20},
	{"New Status", 20},
	{"Analyst", 15},
	{"Observation", 40},
	{"Date", 20},
}

// Exporter genera el libro xlsx del reporte de rollout con excelize.
type Exporter struct{}

// NewExporter construye el generador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Build arma las dos hojas del reporte y devuelve el libro serializado.
func (e *Exporter) Build(notebooks []*entity.Notebook, movements []*entity.Movement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetNotebooks); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetMovements); err != nil {
		return nil, fmt.Errorf("crear hoja de movimientos: %w", err)
	}

	if err := e.writeNotebooks(f, notebooks); err != nil {
		return nil, err
	}
	if err := e.writeMovements(f, movements); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeNotebooks(f *excelize.File, notebooks []*entity.Notebook) error {
	headers := make([]any, len(notebookColumns))
	for i, col := range notebookColumns {
		headers[i] = col.header
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetNotebooks, colName, colName, col.width); err != nil {
			return fmt.Errorf("ancho de columna: %w", err)
		}
	}
	if err := f.SetSheetRow(sheetNotebooks, "A1", &headers); err != nil {
		return fmt.Errorf("cabecera de notebooks: %w", err)
	}

	for i, n := range notebooks {
		placeName := ""
		if n.Place != nil {
			placeName = n.Place.Name
		}
		row := []any{
			n.ID,
			n.ServiceTag,
			stringValue(n.Hostname),
			n.Brand,
			n.Model,
			string(n.NotebookType),
			string(n.RamConfig),
			string(n.Status),
			placeName,
			analystValue(n.ResponsibleAnalyst),
			stringValue(n.ZurichEmployee),
			timeutil.FormatDate(n.CreatedAt),
			timeutil.FormatDate(n.UpdatedAt),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetNotebooks, cell, &row); err != nil {
			return fmt.Errorf("fila de notebook %d: %w", n.ID, err)
		}
	}

	return e.boldHeader(f, sheetNotebooks, len(notebookColumns))
}

func (e *Exporter) writeMovements(f *excelize.File, movements []*entity.Movement) error {
	headers := make([]any, len(movementColumns))
	for i, col := range movementColumns {
		headers[i] = col.header
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetMovements, colName, colName, col.width); err != nil {
			return fmt.Errorf("ancho de columna: %w", err)
		}
	}
	if err := f.SetSheetRow(sheetMovements, "A1", &headers); err != nil {
		return fmt.Errorf("cabecera de movimientos: %w", err)
	}

	for i, m := range movements {
		serviceTag := ""
		if m.Notebook != nil {
			serviceTag = m.Notebook.ServiceTag
		}
		originName, destinyName := "", ""
		if m.OriginPlace != nil {
			originName = m.OriginPlace.Name
		}
		if m.DestinyPlace != nil {
			destinyName = m.DestinyPlace.Name
		}
		row := []any{
			m.ID,
			m.NotebookID,
			serviceTag,
			originName,
			destinyName,
			string(m.PreviousStatus),
			string(m.NewStatus),
			string(m.Analyst),
			stringValue(m.Observation),
			timeutil.FormatDate(m.CreatedAt),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetMovements, cell, &row); err != nil {
			return fmt.Errorf("fila de movimiento %d: %w", m.ID, err)
		}
	}

	return e.boldHeader(f, sheetMovements, len(movementColumns))
}

func (e *Exporter) boldHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("estilo de cabecera: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(cols)
	if err := f.SetCellStyle(sheet, "A1", last+"1", style); err != nil {
		return fmt.Errorf("aplicar estilo de cabecera: %w", err)
	}
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func analystValue(a *entity.Analyst) string {
	if a == nil {
		return ""
	}
	return string(*a)
}
