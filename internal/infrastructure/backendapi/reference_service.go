package backendapi

import (
	"context"
	"encoding/json"

	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

// ReferenceService implementa moves.ReferenceDirectory: lecturas proxy de
// productos, proveedores, clientes y bodegas para resolver nombres. Sus CRUDs
// viven en el backend; aquí no hay escritura.
type ReferenceService struct {
	client *Client
}

// NewReferenceService construye el servicio.
func NewReferenceService(client *Client) *ReferenceService {
	return &ReferenceService{client: client}
}

type productDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	UOM          string `json:"uom"`
	CurrentStock int64  `json:"current_stock"`
}

type vendorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type customerDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type warehouseDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Products lista GET /products/.
func (s *ReferenceService) Products(ctx context.Context) ([]*entity.Product, error) {
	var dtos []productDTO
	if err := s.getList(ctx, "/products/", &dtos); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, &entity.Product{ID: d.ID, Name: d.Name, SKU: d.SKU, UOM: d.UOM, CurrentStock: d.CurrentStock})
	}
	return out, nil
}

// Vendors lista GET /vendors/.
func (s *ReferenceService) Vendors(ctx context.Context) ([]*entity.Vendor, error) {
	var dtos []vendorDTO
	if err := s.getList(ctx, "/vendors/", &dtos); err != nil {
		return nil, err
	}
	out := make([]*entity.Vendor, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, &entity.Vendor{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone})
	}
	return out, nil
}

// Customers lista GET /customers/.
func (s *ReferenceService) Customers(ctx context.Context) ([]*entity.Customer, error) {
	var dtos []customerDTO
	if err := s.getList(ctx, "/customers/", &dtos); err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, &entity.Customer{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Address: d.Address})
	}
	return out, nil
}

// Warehouses lista GET /warehouses/.
func (s *ReferenceService) Warehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	var dtos []warehouseDTO
	if err := s.getList(ctx, "/warehouses/", &dtos); err != nil {
		return nil, err
	}
	out := make([]*entity.Warehouse, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, &entity.Warehouse{ID: d.ID, Name: d.Name, Location: d.Location})
	}
	return out, nil
}

func (s *ReferenceService) getList(ctx context.Context, path string, target interface{}) error {
	resp, err := s.client.request(ctx).Get(path)
	if err != nil {
		return transportError("get "+path, err)
	}
	if resp.IsError() {
		return remoteError(resp)
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return transportError("decode "+path, err)
	}
	return nil
}
