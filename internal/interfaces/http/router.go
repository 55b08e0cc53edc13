package http

import (
	"github.com/gofiber/fiber/v2"

	appmoves "github.com/stockmaster/ops-gateway/internal/application/moves"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovesUC    *appmoves.UseCase
	DocumentUC *appmoves.DocumentUseCase
	Refs       appmoves.ReferenceDirectory
	JWTSecret  string
}

// Router registra las rutas del gateway. Todo el API requiere Bearer Token;
// las mutaciones de movimientos exigen además rol admin u operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Operaciones de movimientos de stock
	moveHandler := NewMoveHandler(deps.MovesUC, deps.DocumentUC)
	moves := api.Group("/operations/moves")
	moves.Get("/", moveHandler.List)
	moves.Get("/:id/actions", moveHandler.Actions)
	moves.Get("/:id/document", moveHandler.Document)

	canWrite := RequireRole("admin", "operador")
	moves.Post("/", canWrite, moveHandler.Create)
	moves.Post("/:id/validate", canWrite, moveHandler.Validate)
	moves.Post("/:id/status", canWrite, moveHandler.ChangeStatus)

	// Lecturas de referencia (solo lectura, cualquier rol autenticado)
	refHandler := NewReferenceHandler(deps.Refs)
	api.Get("/products/", refHandler.Products)
	api.Get("/vendors/", refHandler.Vendors)
	api.Get("/customers/", refHandler.Customers)
	api.Get("/warehouses/", refHandler.Warehouses)
}
