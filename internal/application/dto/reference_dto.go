package dto

import "github.com/stockmaster/ops-gateway/internal/domain/entity"

// ProductResponse referencia de producto para resolver nombres en el UI.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku,omitempty"`
	UOM          string `json:"uom,omitempty"`
	CurrentStock int64  `json:"current_stock"`
}

// VendorResponse proveedor.
type VendorResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// ToProductResponses convierte el listado de productos.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProductResponse{ID: p.ID, Name: p.Name, SKU: p.SKU, UOM: p.UOM, CurrentStock: p.CurrentStock})
	}
	return out
}

// ToVendorResponses convierte el listado de proveedores.
func ToVendorResponses(list []*entity.Vendor) []VendorResponse {
	out := make([]VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, VendorResponse{ID: v.ID, Name: v.Name, Email: v.Email, Phone: v.Phone})
	}
	return out
}

// ToCustomerResponses convierte el listado de clientes.
func ToCustomerResponses(list []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address})
	}
	return out
}

// ToWarehouseResponses convierte el listado de bodegas.
func ToWarehouseResponses(list []*entity.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, WarehouseResponse{ID: w.ID, Name: w.Name, Location: w.Location})
	}
	return out
}
