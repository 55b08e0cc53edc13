package entity

import (
	"fmt"
	"time"
)

// MoveType tipo de movimiento de stock. Inmutable tras la creación.
type MoveType string

const (
	MoveTypeIn         MoveType = "IN"  // recepción (entrada desde proveedor)
	MoveTypeOut        MoveType = "OUT" // entrega (salida hacia cliente)
	MoveTypeInternal   MoveType = "INT" // traslado entre bodegas
	MoveTypeAdjustment MoveType = "ADJ" // ajuste manual de stock
)

// Valid indica si el tipo es uno de los cuatro reconocidos.
func (t MoveType) Valid() bool {
	switch t {
	case MoveTypeIn, MoveTypeOut, MoveTypeInternal, MoveTypeAdjustment:
		return true
	}
	return false
}

// Status estado del ciclo de vida de un movimiento.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusWaiting   Status = "waiting"
	StatusReady     Status = "ready"
	StatusDone      Status = "done" // terminal
	StatusCancelled Status = "cancelled"
)

// Valid indica si el estado es uno de los cinco reconocidos.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// MoveRecord representa un movimiento de inventario (recepción, entrega,
// traslado o ajuste). El backend remoto asigna ID y CreatedAt al crearlo;
// el gateway nunca los inventa ni los modifica.
type MoveRecord struct {
	ID                int64
	Reference         string // etiqueta legible opcional; vacía -> se muestra "#<id>"
	MoveType          MoveType
	ProductID         int64
	Quantity          int64 // entero; el signo solo es significativo en ADJ
	SourceLocation    string
	DestLocation      string
	SourceWarehouseID *int64
	DestWarehouseID   *int64
	VendorID          *int64 // solo significativo en IN
	CustomerID        *int64 // solo significativo en OUT
	Status            Status
	CreatedAt         time.Time
}

// DisplayName devuelve la referencia legible, o "#<id>" si no hay referencia.
func (m *MoveRecord) DisplayName() string {
	if m.Reference != "" {
		return m.Reference
	}
	return fmt.Sprintf("#%d", m.ID)
}
