package moves

import (
	"context"

	"github.com/stockmaster/ops-gateway/internal/domain/document"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	domainmoves "github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// MoveService define el puerto hacia el backend de inventario para el flujo de
// movimientos (DIP). El gateway no guarda copia propia: las cuatro operaciones
// son round-trips y el estado mostrado siempre sale de re-consultar.
type MoveService interface {
	// List devuelve los movimientos; el orden lo decide el backend
	// (más recientes primero por convención).
	List(ctx context.Context, f domainmoves.ListFilters) ([]*entity.MoveRecord, error)
	// Create envía un movimiento nuevo; vuelve en draft con id y created_at asignados.
	Create(ctx context.Context, p *domainmoves.CreatePayload) (*entity.MoveRecord, error)
	// Validate finaliza un movimiento aplicando efectos de stock; el backend
	// puede rechazarlo (p.ej. stock insuficiente) con un detail.
	Validate(ctx context.Context, id int64) (*entity.MoveRecord, error)
	// ChangeStatus solicita una transición; el backend re-valida la tabla de
	// transiciones (la copia local es solo UX).
	ChangeStatus(ctx context.Context, id int64, next entity.Status) (*entity.MoveRecord, error)
}

// ReferenceDirectory puerto de solo lectura para resolver nombres de las
// entidades referenciadas. Sus CRUDs pertenecen a colaboradores externos.
type ReferenceDirectory interface {
	Products(ctx context.Context) ([]*entity.Product, error)
	Vendors(ctx context.Context) ([]*entity.Vendor, error)
	Customers(ctx context.Context) ([]*entity.Customer, error)
	Warehouses(ctx context.Context) ([]*entity.Warehouse, error)
}

// DocumentRenderer puerto de render efectivo del documento imprimible.
// La construcción del documento es pura (domain/document); solo el render
// a bytes es efecto. Para tests se inyecta un fake.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *document.MoveDocument) ([]byte, error)
}
