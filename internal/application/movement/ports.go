package movement

import (
	"context"

	"github.com/tu-usuario/rollout-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el alta del movimiento y la actualización de la
// proyección estado/lugar del notebook sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		notebookRepo repository.NotebookRepository,
	) error) error
}
