package moves_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmoves "github.com/stockmaster/ops-gateway/internal/application/moves"
	"github.com/stockmaster/ops-gateway/internal/domain"
	"github.com/stockmaster/ops-gateway/internal/domain/document"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	domainmoves "github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// fakeDirectory directorio de referencias en memoria.
type fakeDirectory struct {
	products   []*entity.Product
	vendors    []*entity.Vendor
	customers  []*entity.Customer
	warehouses []*entity.Warehouse

	vendorHits int
}

func (f *fakeDirectory) Products(context.Context) ([]*entity.Product, error)   { return f.products, nil }
func (f *fakeDirectory) Customers(context.Context) ([]*entity.Customer, error) { return f.customers, nil }
func (f *fakeDirectory) Warehouses(context.Context) ([]*entity.Warehouse, error) {
	return f.warehouses, nil
}
func (f *fakeDirectory) Vendors(context.Context) ([]*entity.Vendor, error) {
	f.vendorHits++
	return f.vendors, nil
}

// fakeRenderer captura el documento y devuelve bytes fijos.
type fakeRenderer struct {
	last *document.MoveDocument
	fail bool
}

func (f *fakeRenderer) Render(_ context.Context, doc *document.MoveDocument) ([]byte, error) {
	if f.fail {
		return nil, errors.New("sin superficie de render")
	}
	f.last = doc
	return []byte("%PDF-fake"), nil
}

func fixedNow() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func setupDocumentUC(t *testing.T, dir *fakeDirectory, r *fakeRenderer) (*appmoves.DocumentUseCase, *appmoves.UseCase) {
	t.Helper()
	uc := appmoves.NewUseCase(newFakeMoveService())
	return appmoves.NewDocumentUseCase(uc, dir, r, fixedNow), uc
}

func TestDocumentUseCase_Render_ResuelveReferencias(t *testing.T) {
	dir := &fakeDirectory{
		products:   []*entity.Product{{ID: 7, Name: "Tornillo M8", SKU: "TOR-M8"}},
		vendors:    []*entity.Vendor{{ID: 3, Name: "Aceros del Norte"}},
		warehouses: []*entity.Warehouse{{ID: 2, Name: "Bodega Central"}},
	}
	r := &fakeRenderer{}
	docUC, uc := setupDocumentUC(t, dir, r)
	ctx := context.Background()

	m, err := uc.Create(ctx, domainmoves.CreateMoveInput{
		MoveType:        entity.MoveTypeIn,
		ProductID:       ptr(7),
		Quantity:        ptr(50),
		DestWarehouseID: ptr(2),
		VendorID:        ptr(3),
	})
	require.NoError(t, err)

	data, filename, err := docUC.Render(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "#1 - IN.pdf", filename)

	require.NotNil(t, r.last)
	assert.Equal(t, "RECEIPT", r.last.TypeLabel)
	assert.Equal(t, "Tornillo M8", r.last.Product)
	assert.Equal(t, "Aceros del Norte", r.last.Route[0].Content)
	assert.Equal(t, "Bodega Central", r.last.Route[1].Content)
}

// El directorio de vendors solo se consulta cuando el tipo es IN y hay vendor_id.
func TestDocumentUseCase_Render_NoConsultaVendorsSiNoAplica(t *testing.T) {
	dir := &fakeDirectory{
		products:   []*entity.Product{{ID: 7, Name: "Caja"}},
		warehouses: []*entity.Warehouse{{ID: 5, Name: "Bodega Central"}},
	}
	r := &fakeRenderer{}
	docUC, uc := setupDocumentUC(t, dir, r)
	ctx := context.Background()

	m, err := uc.Create(ctx, domainmoves.CreateMoveInput{
		MoveType: entity.MoveTypeAdjustment, ProductID: ptr(7), Quantity: ptr(-1), SourceWarehouseID: ptr(5),
	})
	require.NoError(t, err)

	_, _, err = docUC.Render(ctx, m.ID)
	require.NoError(t, err)
	assert.Zero(t, dir.vendorHits)
}

func TestDocumentUseCase_Render_MovimientoInexistente(t *testing.T) {
	docUC, _ := setupDocumentUC(t, &fakeDirectory{}, &fakeRenderer{})
	_, _, err := docUC.Render(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentUseCase_Render_FalloDelRenderer(t *testing.T) {
	dir := &fakeDirectory{products: []*entity.Product{{ID: 7, Name: "Caja"}}}
	r := &fakeRenderer{fail: true}
	docUC, uc := setupDocumentUC(t, dir, r)
	ctx := context.Background()

	m, err := uc.Create(ctx, domainmoves.CreateMoveInput{
		MoveType: entity.MoveTypeAdjustment, ProductID: ptr(7), Quantity: ptr(1), SourceWarehouseID: ptr(5),
	})
	require.NoError(t, err)

	_, _, err = docUC.Render(ctx, m.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
