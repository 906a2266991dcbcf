package export

import (
	"fmt"
	"time"

	"github.com/tu-usuario/rollout-api/internal/domain/entity"
	"github.com/tu-usuario/rollout-api/internal/domain/repository"
	"github.com/tu-usuario/rollout-api/pkg/timeutil"
)

// ContentTypeXLSX tipo MIME de un libro de Excel OOXML.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SpreadsheetBuilder construye el libro xlsx a partir de los datos ya cargados.
type SpreadsheetBuilder interface {
	Build(notebooks []*entity.Notebook, movements []*entity.Movement) ([]byte, error)
}

// File archivo generado listo para enviar al caller.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UseCase genera el reporte xlsx del inventario: hoja de notebooks y hoja de movimientos,
// con los nombres de lugar desnormalizados.
type UseCase struct {
	notebookRepo repository.NotebookRepository
	movementRepo repository.MovementRepository
	builder      SpreadsheetBuilder
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	notebookRepo repository.NotebookRepository,
	movementRepo repository.MovementRepository,
	builder SpreadsheetBuilder,
) *UseCase {
	return &UseCase{notebookRepo: notebookRepo, movementRepo: movementRepo, builder: builder}
}

// ExportNotebooks genera el libro con todos los notebooks y movimientos.
// El nombre del archivo incluye el timestamp de generación en hora de Brasilia.
func (uc *UseCase) ExportNotebooks() (*File, error) {
	notebooks, err := uc.notebookRepo.ListAll(repository.NotebookFilter{})
	if err != nil {
		return nil, fmt.Errorf("cargar notebooks para export: %w", err)
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, fmt.Errorf("cargar movimientos para export: %w", err)
	}

	content, err := uc.builder.Build(notebooks, movements)
	if err != nil {
		return nil, fmt.Errorf("generar xlsx: %w", err)
	}

	return &File{
		Name:        fmt.Sprintf("notebooks-export-%s.xlsx", timeutil.FileTimestamp(time.Now())),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}
