package backendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	domainmoves "github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// MoveService implementa moves.MoveService contra el backend remoto.
// Ninguna operación es optimista: cada mutación devuelve el registro tal como
// quedó en el backend y el UI se refresca re-listando.
type MoveService struct {
	client *Client
}

// NewMoveService construye el servicio.
func NewMoveService(client *Client) *MoveService {
	return &MoveService{client: client}
}

// moveDTO forma de un movimiento en el wire del backend.
type moveDTO struct {
	ID                int64     `json:"id"`
	Reference         string    `json:"reference"`
	MoveType          string    `json:"move_type"`
	ProductID         int64     `json:"product_id"`
	Quantity          int64     `json:"quantity"`
	SourceLocation    string    `json:"source_location"`
	DestLocation      string    `json:"dest_location"`
	SourceWarehouseID *int64    `json:"source_warehouse_id"`
	DestWarehouseID   *int64    `json:"dest_warehouse_id"`
	VendorID          *int64    `json:"vendor_id"`
	CustomerID        *int64    `json:"customer_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

func (d moveDTO) toEntity() *entity.MoveRecord {
	return &entity.MoveRecord{
		ID:                d.ID,
		Reference:         d.Reference,
		MoveType:          entity.MoveType(d.MoveType),
		ProductID:         d.ProductID,
		Quantity:          d.Quantity,
		SourceLocation:    d.SourceLocation,
		DestLocation:      d.DestLocation,
		SourceWarehouseID: d.SourceWarehouseID,
		DestWarehouseID:   d.DestWarehouseID,
		VendorID:          d.VendorID,
		CustomerID:        d.CustomerID,
		Status:            entity.Status(d.Status),
		CreatedAt:         d.CreatedAt,
	}
}

// createMoveDTO payload de creación. Los ids no aplicables viajan como null,
// nunca como string vacío, para que el backend distinga "no provisto".
type createMoveDTO struct {
	MoveType          string `json:"move_type"`
	ProductID         int64  `json:"product_id"`
	Quantity          int64  `json:"quantity"`
	SourceLocation    string `json:"source_location,omitempty"`
	DestLocation      string `json:"dest_location,omitempty"`
	SourceWarehouseID *int64 `json:"source_warehouse_id"`
	DestWarehouseID   *int64 `json:"dest_warehouse_id"`
	VendorID          *int64 `json:"vendor_id"`
	CustomerID        *int64 `json:"customer_id"`
}

// List consulta GET /operations/moves reenviando los filtros como query params.
func (s *MoveService) List(ctx context.Context, f domainmoves.ListFilters) ([]*entity.MoveRecord, error) {
	req := s.client.request(ctx)
	if f.MoveType != "" {
		req.SetQueryParam("move_type", f.MoveType)
	}
	if f.Status != "" {
		req.SetQueryParam("status", f.Status)
	}
	if f.Search != "" {
		req.SetQueryParam("search", f.Search)
	}
	if f.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(f.Limit))
	}

	resp, err := req.Get("/operations/moves")
	if err != nil {
		return nil, transportError("list moves", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}

	var dtos []moveDTO
	if err := json.Unmarshal(resp.Body(), &dtos); err != nil {
		return nil, transportError("list moves", err)
	}
	out := make([]*entity.MoveRecord, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// Create envía POST /operations/moves; el backend crea en draft y asigna
// id y created_at.
func (s *MoveService) Create(ctx context.Context, p *domainmoves.CreatePayload) (*entity.MoveRecord, error) {
	body := createMoveDTO{
		MoveType:          string(p.MoveType),
		ProductID:         p.ProductID,
		Quantity:          p.Quantity,
		SourceLocation:    p.SourceLocation,
		DestLocation:      p.DestLocation,
		SourceWarehouseID: p.SourceWarehouseID,
		DestWarehouseID:   p.DestWarehouseID,
		VendorID:          p.VendorID,
		CustomerID:        p.CustomerID,
	}
	resp, err := s.client.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/operations/moves")
	if err != nil {
		return nil, transportError("create move", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return decodeMove(resp.Body())
}

// Validate envía POST /operations/moves/{id}/validate (finalización con
// efectos de stock; el backend puede rechazar por stock insuficiente).
func (s *MoveService) Validate(ctx context.Context, id int64) (*entity.MoveRecord, error) {
	resp, err := s.client.request(ctx).
		Post(fmt.Sprintf("/operations/moves/%d/validate", id))
	if err != nil {
		return nil, transportError("validate move", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return decodeMove(resp.Body())
}

// ChangeStatus envía POST /operations/moves/{id}/status?new_status=...; el
// backend re-valida la transición como autoridad.
func (s *MoveService) ChangeStatus(ctx context.Context, id int64, next entity.Status) (*entity.MoveRecord, error) {
	resp, err := s.client.request(ctx).
		SetQueryParam("new_status", string(next)).
		Post(fmt.Sprintf("/operations/moves/%d/status", id))
	if err != nil {
		return nil, transportError("change status", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return decodeMove(resp.Body())
}

func decodeMove(body []byte) (*entity.MoveRecord, error) {
	var d moveDTO
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, transportError("decode move", err)
	}
	return d.toEntity(), nil
}
