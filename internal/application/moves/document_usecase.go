package moves

import (
	"context"
	"fmt"
	"time"

	"github.com/stockmaster/ops-gateway/internal/domain/document"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

// DocumentUseCase produce el documento imprimible de un movimiento: resuelve
// las referencias contra el directorio remoto, arma el documento puro y lo
// entrega al renderer inyectado. Imprimir es mejor-esfuerzo: ningún estado del
// backend depende de que el render ocurra.
type DocumentUseCase struct {
	movesUC  *UseCase
	refs     ReferenceDirectory
	renderer DocumentRenderer
	now      func() time.Time
}

// NewDocumentUseCase construye el caso de uso. now permite fijar la hora de
// render en tests; en producción se pasa time.Now.
func NewDocumentUseCase(movesUC *UseCase, refs ReferenceDirectory, renderer DocumentRenderer, now func() time.Time) *DocumentUseCase {
	if now == nil {
		now = time.Now
	}
	return &DocumentUseCase{movesUC: movesUC, refs: refs, renderer: renderer, now: now}
}

// Render devuelve los bytes del documento y el nombre de archivo sugerido
// ("<referencia-o-#id> - <tipo>.pdf").
func (uc *DocumentUseCase) Render(ctx context.Context, id int64) ([]byte, string, error) {
	move, err := uc.movesUC.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	refs, err := uc.resolveRefs(ctx, move)
	if err != nil {
		return nil, "", err
	}

	doc := document.BuildMoveDocument(move, refs, uc.now())
	data, err := uc.renderer.Render(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("render del documento: %w", err)
	}
	return data, doc.Title + ".pdf", nil
}

// resolveRefs trae solo los directorios que el tipo de movimiento necesita:
// vendor únicamente en IN, customer únicamente en OUT, bodegas si hay alguna
// referenciada. La resolución es pura respecto de las listas obtenidas.
func (uc *DocumentUseCase) resolveRefs(ctx context.Context, move *entity.MoveRecord) (document.Refs, error) {
	var refs document.Refs

	products, err := uc.refs.Products(ctx)
	if err != nil {
		return refs, err
	}
	refs.Product = findProduct(products, move.ProductID)

	if move.MoveType == entity.MoveTypeIn && move.VendorID != nil {
		vendors, err := uc.refs.Vendors(ctx)
		if err != nil {
			return refs, err
		}
		refs.Vendor = findVendor(vendors, *move.VendorID)
	}

	if move.MoveType == entity.MoveTypeOut && move.CustomerID != nil {
		customers, err := uc.refs.Customers(ctx)
		if err != nil {
			return refs, err
		}
		refs.Customer = findCustomer(customers, *move.CustomerID)
	}

	if move.SourceWarehouseID != nil || move.DestWarehouseID != nil {
		warehouses, err := uc.refs.Warehouses(ctx)
		if err != nil {
			return refs, err
		}
		if move.SourceWarehouseID != nil {
			refs.SourceWarehouse = findWarehouse(warehouses, *move.SourceWarehouseID)
		}
		if move.DestWarehouseID != nil {
			refs.DestWarehouse = findWarehouse(warehouses, *move.DestWarehouseID)
		}
	}

	return refs, nil
}

func findProduct(list []*entity.Product, id int64) *entity.Product {
	for _, p := range list {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findVendor(list []*entity.Vendor, id int64) *entity.Vendor {
	for _, v := range list {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func findCustomer(list []*entity.Customer, id int64) *entity.Customer {
	for _, c := range list {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func findWarehouse(list []*entity.Warehouse, id int64) *entity.Warehouse {
	for _, w := range list {
		if w.ID == id {
			return w
		}
	}
	return nil
}
