package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/ops-gateway/internal/domain/document"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

var fechaRender = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func ptr(v int64) *int64 { return &v }

// Escenario de fallback del spec de impresión: un IN sin referencia ni vendor,
// con source_location "Dock A", muestra "Dock A" como origen y título "#<id> - IN".
func TestBuildMoveDocument_IN_FallbacksSinVendorNiReferencia(t *testing.T) {
	m := &entity.MoveRecord{
		ID:             42,
		MoveType:       entity.MoveTypeIn,
		ProductID:      7,
		Quantity:       50,
		SourceLocation: "Dock A",
		Status:         entity.StatusDraft,
		CreatedAt:      time.Date(2025, 3, 10, 16, 5, 0, 0, time.UTC),
	}
	doc := document.BuildMoveDocument(m, document.Refs{}, fechaRender)

	assert.Equal(t, "#42 - IN", doc.Title)
	assert.Equal(t, "RECEIPT", doc.TypeLabel)
	assert.Equal(t, "#42", doc.Reference)
	assert.Equal(t, "10/03/2025 16:05", doc.Date)
	assert.Equal(t, "Product #7", doc.Product)
	assert.Equal(t, "N/A", doc.SKU)
	assert.Equal(t, "50 units", doc.Quantity)
	assert.Equal(t, "DRAFT", doc.Status)

	require.Len(t, doc.Route, 2)
	assert.Equal(t, "From (Vendor)", doc.Route[0].Title)
	assert.Equal(t, "Dock A", doc.Route[0].Content)
	assert.Empty(t, doc.Route[0].Details, "sin vendor no hay líneas de contacto")
	assert.Equal(t, "To (Warehouse)", doc.Route[1].Title)
	assert.Equal(t, "N/A", doc.Route[1].Content)
}

func TestBuildMoveDocument_IN_ConVendorYBodegaResueltos(t *testing.T) {
	m := &entity.MoveRecord{
		ID:              10,
		Reference:       "PO-123",
		MoveType:        entity.MoveTypeIn,
		ProductID:       7,
		Quantity:        50,
		VendorID:        ptr(3),
		DestWarehouseID: ptr(2),
		Status:          entity.StatusReady,
		CreatedAt:       time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
	}
	refs := document.Refs{
		Product:       &entity.Product{ID: 7, Name: "Tornillo M8", SKU: "TOR-M8", UOM: "cajas"},
		Vendor:        &entity.Vendor{ID: 3, Name: "Aceros del Norte", Email: "ventas@aceros.co", Phone: "3001234567"},
		DestWarehouse: &entity.Warehouse{ID: 2, Name: "Bodega Central"},
	}
	doc := document.BuildMoveDocument(m, refs, fechaRender)

	assert.Equal(t, "PO-123 - IN", doc.Title)
	assert.Equal(t, "Tornillo M8", doc.Product)
	assert.Equal(t, "TOR-M8", doc.SKU)
	assert.Equal(t, "50 cajas", doc.Quantity)

	require.Len(t, doc.Route, 2)
	assert.Equal(t, "Aceros del Norte", doc.Route[0].Content)
	assert.Equal(t, []string{"Email: ventas@aceros.co", "Phone: 3001234567"}, doc.Route[0].Details)
	assert.Equal(t, "Bodega Central", doc.Route[1].Content)
}

func TestBuildMoveDocument_OUT_ContactoDelCliente(t *testing.T) {
	m := &entity.MoveRecord{
		ID:                11,
		MoveType:          entity.MoveTypeOut,
		ProductID:         7,
		Quantity:          5,
		SourceWarehouseID: ptr(1),
		CustomerID:        ptr(9),
		Status:            entity.StatusDone,
		CreatedAt:         time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
	refs := document.Refs{
		SourceWarehouse: &entity.Warehouse{ID: 1, Name: "Bodega Sur"},
		Customer:        &entity.Customer{ID: 9, Name: "Ferretería La 14", Phone: "6015550000", Address: "Cll 14 #3-21"},
	}
	doc := document.BuildMoveDocument(m, refs, fechaRender)

	require.Len(t, doc.Route, 2)
	assert.Equal(t, "From (Warehouse)", doc.Route[0].Title)
	assert.Equal(t, "Bodega Sur", doc.Route[0].Content)
	assert.Equal(t, "To (Customer)", doc.Route[1].Title)
	assert.Equal(t, "Ferretería La 14", doc.Route[1].Content)
	// sin email: solo teléfono y dirección
	assert.Equal(t, []string{"Phone: 6015550000", "Address: Cll 14 #3-21"}, doc.Route[1].Details)
	assert.Equal(t, "DONE", doc.Status)
}

// Regla única para INT: nombre resuelto primero, ubicación como fallback, N/A al final.
func TestBuildMoveDocument_INT_PrefiereNombreResuelto(t *testing.T) {
	m := &entity.MoveRecord{
		ID:                12,
		MoveType:          entity.MoveTypeInternal,
		ProductID:         7,
		Quantity:          3,
		SourceLocation:    "Muelle 1",
		DestLocation:      "Muelle 2",
		SourceWarehouseID: ptr(1),
		DestWarehouseID:   ptr(2),
		Status:            entity.StatusWaiting,
	}

	// Con bodegas resueltas gana el nombre
	doc := document.BuildMoveDocument(m, document.Refs{
		SourceWarehouse: &entity.Warehouse{ID: 1, Name: "Bodega Norte"},
		DestWarehouse:   &entity.Warehouse{ID: 2, Name: "Bodega Central"},
	}, fechaRender)
	require.Len(t, doc.Route, 2)
	assert.Equal(t, "Bodega Norte", doc.Route[0].Content)
	assert.Equal(t, "Bodega Central", doc.Route[1].Content)

	// Sin resolver cae a la ubicación de texto
	doc = document.BuildMoveDocument(m, document.Refs{}, fechaRender)
	assert.Equal(t, "Muelle 1", doc.Route[0].Content)
	assert.Equal(t, "Muelle 2", doc.Route[1].Content)
}

func TestBuildMoveDocument_ADJ_UnaSolaBodega(t *testing.T) {
	m := &entity.MoveRecord{
		ID:                13,
		MoveType:          entity.MoveTypeAdjustment,
		ProductID:         7,
		Quantity:          -2,
		SourceWarehouseID: ptr(5),
		DestWarehouseID:   ptr(5),
		Status:            entity.StatusDraft,
	}
	doc := document.BuildMoveDocument(m, document.Refs{
		SourceWarehouse: &entity.Warehouse{ID: 5, Name: "Bodega Central"},
	}, fechaRender)

	require.Len(t, doc.Route, 1)
	assert.Equal(t, "Warehouse", doc.Route[0].Title)
	assert.Equal(t, "Bodega Central", doc.Route[0].Content)
	assert.Equal(t, "-2 units", doc.Quantity)
}

func TestBuildMoveDocument_FechaAusente(t *testing.T) {
	m := &entity.MoveRecord{ID: 14, MoveType: entity.MoveTypeAdjustment, Status: entity.StatusDraft}
	doc := document.BuildMoveDocument(m, document.Refs{}, fechaRender)
	assert.Equal(t, "-", doc.Date)
}

// Idempotencia: mismas entradas, mismo documento.
func TestBuildMoveDocument_EsPuro(t *testing.T) {
	m := &entity.MoveRecord{
		ID: 15, Reference: "INT-9", MoveType: entity.MoveTypeInternal,
		ProductID: 7, Quantity: 1, SourceLocation: "A", DestLocation: "B",
		Status: entity.StatusReady, CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	refs := document.Refs{Product: &entity.Product{ID: 7, Name: "Caja", SKU: "CJ-1"}}
	a := document.BuildMoveDocument(m, refs, fechaRender)
	b := document.BuildMoveDocument(m, refs, fechaRender)
	assert.Equal(t, a, b)
}
