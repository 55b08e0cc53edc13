// Package document construye la representación imprimible de un movimiento.
// BuildMoveDocument es puro: mismo movimiento y mismas referencias resueltas
// producen siempre el mismo documento. El render efectivo (PDF) vive en
// infrastructure/pdf y se inyecta como puerto.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	"github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// SystemName encabeza el documento y la atribución del footer.
const SystemName = "StockMaster IMS"

const notAvailable = "N/A"

// Refs referencias resueltas para enriquecer el documento. Cualquiera puede
// ser nil; el documento cae a las ubicaciones de texto libre o a "N/A".
type Refs struct {
	Product         *entity.Product
	Vendor          *entity.Vendor
	Customer        *entity.Customer
	SourceWarehouse *entity.Warehouse
	DestWarehouse   *entity.Warehouse
}

// Section bloque de ruta del documento (origen/destino según el tipo).
type Section struct {
	Title   string
	Content string
	Details []string // líneas de contacto opcionales
}

// MoveDocument documento imprimible de un movimiento, listo para render.
type MoveDocument struct {
	Title      string // "<referencia-o-#id> - <tipo>"
	SystemName string
	TypeLabel  string // RECEIPT, DELIVERY ORDER, INTERNAL TRANSFER, STOCK ADJUSTMENT
	Reference  string
	Date       string // "-" si no hay fecha
	Product    string
	SKU        string
	Quantity   string // "<n> <uom>"
	Route      []Section
	Status     string // en mayúsculas
	Footer     string
	PrintedAt  string
}

// BuildMoveDocument arma el documento a partir del movimiento y sus referencias.
// now es la hora de render (se inyecta para mantener la función pura).
func BuildMoveDocument(m *entity.MoveRecord, refs Refs, now time.Time) *MoveDocument {
	return &MoveDocument{
		Title:      fmt.Sprintf("%s - %s", m.DisplayName(), m.MoveType),
		SystemName: SystemName,
		TypeLabel:  moves.TypeLabel(m.MoveType),
		Reference:  m.DisplayName(),
		Date:       formatDate(m.CreatedAt),
		Product:    productName(m, refs.Product),
		SKU:        productSKU(refs.Product),
		Quantity:   quantityLine(m, refs.Product),
		Route:      routeSections(m, refs),
		Status:     strings.ToUpper(string(m.Status)),
		Footer:     "Generated by StockMaster Inventory Management System",
		PrintedAt:  now.Format("02/01/2006 15:04:05"),
	}
}

// formatDate: "-" para fechas ausentes; si no, fecha + hora:minuto.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

func productName(m *entity.MoveRecord, p *entity.Product) string {
	if p != nil && p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Product #%d", m.ProductID)
}

func productSKU(p *entity.Product) string {
	if p != nil && p.SKU != "" {
		return p.SKU
	}
	return notAvailable
}

func quantityLine(m *entity.MoveRecord, p *entity.Product) string {
	uom := "units"
	if p != nil && p.UOM != "" {
		uom = p.UOM
	}
	return fmt.Sprintf("%d %s", m.Quantity, uom)
}

// routeSections arma el bloque de ruta según el tipo de movimiento.
func routeSections(m *entity.MoveRecord, refs Refs) []Section {
	switch m.MoveType {
	case entity.MoveTypeIn:
		from := Section{Title: "From (Vendor)", Content: fallback(vendorName(refs.Vendor), m.SourceLocation)}
		if refs.Vendor != nil {
			from.Details = contactDetails(
				detail("Email", refs.Vendor.Email),
				detail("Phone", refs.Vendor.Phone),
			)
		}
		to := Section{Title: "To (Warehouse)", Content: fallback(warehouseName(refs.DestWarehouse), m.DestLocation)}
		return []Section{from, to}

	case entity.MoveTypeOut:
		from := Section{Title: "From (Warehouse)", Content: fallback(warehouseName(refs.SourceWarehouse), m.SourceLocation)}
		to := Section{Title: "To (Customer)", Content: fallback(customerName(refs.Customer), m.DestLocation)}
		if refs.Customer != nil {
			to.Details = contactDetails(
				detail("Email", refs.Customer.Email),
				detail("Phone", refs.Customer.Phone),
				detail("Address", refs.Customer.Address),
			)
		}
		return []Section{from, to}

	case entity.MoveTypeInternal:
		// Regla única para los traslados: nombre de bodega resuelto primero,
		// texto de ubicación como fallback, N/A al final.
		return []Section{
			{Title: "From Warehouse", Content: fallback(warehouseName(refs.SourceWarehouse), m.SourceLocation)},
			{Title: "To Warehouse", Content: fallback(warehouseName(refs.DestWarehouse), m.DestLocation)},
		}

	case entity.MoveTypeAdjustment:
		wh := refs.SourceWarehouse
		if wh == nil {
			wh = refs.DestWarehouse
		}
		return []Section{
			{Title: "Warehouse", Content: fallback(warehouseName(wh), m.SourceLocation, m.DestLocation)},
		}

	default:
		return nil
	}
}

// fallback devuelve el primer candidato no vacío, o "N/A".
func fallback(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return notAvailable
}

func vendorName(v *entity.Vendor) string {
	if v == nil {
		return ""
	}
	return v.Name
}

func customerName(c *entity.Customer) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func warehouseName(w *entity.Warehouse) string {
	if w == nil {
		return ""
	}
	return w.Name
}

func detail(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func contactDetails(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
