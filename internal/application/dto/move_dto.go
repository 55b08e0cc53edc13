package dto

import (
	"time"

	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

// CreateMoveRequest cuerpo de creación de un movimiento. Los ids son punteros
// para que una selección vacía viaje como null y no como cero o string vacío.
type CreateMoveRequest struct {
	MoveType          string `json:"move_type"`
	ProductID         *int64 `json:"product_id"`
	Quantity          *int64 `json:"quantity"`
	SourceLocation    string `json:"source_location,omitempty"`
	DestLocation      string `json:"dest_location,omitempty"`
	SourceWarehouseID *int64 `json:"source_warehouse_id,omitempty"`
	DestWarehouseID   *int64 `json:"dest_warehouse_id,omitempty"`
	VendorID          *int64 `json:"vendor_id,omitempty"`
	CustomerID        *int64 `json:"customer_id,omitempty"`
}

// MoveResponse un movimiento tal como lo publica el gateway (misma forma que
// el backend autoritativo, más display_name ya resuelto para el UI).
type MoveResponse struct {
	ID                int64     `json:"id"`
	Reference         string    `json:"reference,omitempty"`
	DisplayName       string    `json:"display_name"`
	MoveType          string    `json:"move_type"`
	ProductID         int64     `json:"product_id"`
	Quantity          int64     `json:"quantity"`
	SourceLocation    string    `json:"source_location,omitempty"`
	DestLocation      string    `json:"dest_location,omitempty"`
	SourceWarehouseID *int64    `json:"source_warehouse_id"`
	DestWarehouseID   *int64    `json:"dest_warehouse_id"`
	VendorID          *int64    `json:"vendor_id"`
	CustomerID        *int64    `json:"customer_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// MoveListResponse listado de movimientos.
type MoveListResponse struct {
	Total int            `json:"total"`
	Moves []MoveResponse `json:"moves"`
}

// MoveActionDTO una acción de transición disponible para el UI.
type MoveActionDTO struct {
	NextStatus string `json:"next_status"`
	Label      string `json:"label"`
}

// MoveActionsResponse acciones disponibles de un movimiento según la política
// de transiciones, más el flag de la acción Validate.
type MoveActionsResponse struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	Actions     []MoveActionDTO `json:"actions"`
	CanValidate bool            `json:"can_validate"`
}

// ToMoveResponse convierte la entidad al DTO publicado.
func ToMoveResponse(m *entity.MoveRecord) MoveResponse {
	return MoveResponse{
		ID:                m.ID,
		Reference:         m.Reference,
		DisplayName:       m.DisplayName(),
		MoveType:          string(m.MoveType),
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		SourceLocation:    m.SourceLocation,
		DestLocation:      m.DestLocation,
		SourceWarehouseID: m.SourceWarehouseID,
		DestWarehouseID:   m.DestWarehouseID,
		VendorID:          m.VendorID,
		CustomerID:        m.CustomerID,
		Status:            string(m.Status),
		CreatedAt:         m.CreatedAt,
	}
}

// ToMoveListResponse convierte el listado completo.
func ToMoveListResponse(list []*entity.MoveRecord) MoveListResponse {
	items := make([]MoveResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMoveResponse(m))
	}
	return MoveListResponse{Total: len(items), Moves: items}
}
