package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rollout-api/internal/application/export"
	"github.com/tu-usuario/rollout-api/internal/application/movement"
	"github.com/tu-usuario/rollout-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	NotebookUC *usecase.NotebookUseCase
	PlaceUC    *usecase.PlaceUseCase
	MovementUC *movement.UseCase
	ExportUC   *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Notebooks
	// Las rutas literales van antes de /:id para que Fiber no capture
	// "inventory" o "service-tag" como identificador.
	notebooks := api.Group("/notebooks")
	notebookHandler := NewNotebookHandler(deps.NotebookUC)
	notebooks.Post("/", notebookHandler.Create)
	notebooks.Get("/", notebookHandler.FindAll)
	notebooks.Get("/inventory", notebookHandler.Inventory)
	notebooks.Get("/service-tag/:serviceTag", notebookHandler.FindByServiceTag)
	notebooks.Get("/:id", notebookHandler.FindOne)
	notebooks.Patch("/:id", notebookHandler.Update)
	notebooks.Delete("/:id", notebookHandler.Remove)

	// Places
	places := api.Group("/places")
	placeHandler := NewPlaceHandler(deps.PlaceUC)
	places.Post("/", placeHandler.Create)
	places.Get("/", placeHandler.FindAll)
	places.Get("/:id", placeHandler.FindOne)
	places.Patch("/:id", placeHandler.Update)
	places.Delete("/:id", placeHandler.Remove)

	// Movements (append-only: sin update ni delete)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Post("/by-service-tag", movementHandler.CreateByServiceTag)
	movements.Get("/", movementHandler.FindAll)
	movements.Get("/notebook/:id", movementHandler.FindByNotebookID)
	movements.Get("/service-tag/:serviceTag", movementHandler.FindByServiceTag)
	movements.Get("/:id", movementHandler.FindOne)

	// Export
	exportGroup := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/notebooks", exportHandler.Notebooks)
	exportGroup.Get("/excel", exportHandler.Notebooks)
}
