package moves

import (
	"fmt"
	"strings"

	"github.com/stockmaster/ops-gateway/internal/domain"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

// CreateMoveInput entrada cruda del formulario de creación. Los ids llegan como
// punteros para distinguir "no provisto" (nil) de un valor real; nunca se
// serializa un string vacío hacia el backend.
type CreateMoveInput struct {
	MoveType          entity.MoveType
	ProductID         *int64
	Quantity          *int64
	SourceLocation    string
	DestLocation      string
	SourceWarehouseID *int64
	DestWarehouseID   *int64
	VendorID          *int64
	CustomerID        *int64
}

// CreatePayload payload normalizado listo para enviarse al backend: los campos
// no aplicables al tipo van en nil y el espejo de bodega de ADJ ya está aplicado.
type CreatePayload struct {
	MoveType          entity.MoveType
	ProductID         int64
	Quantity          int64
	SourceLocation    string
	DestLocation      string
	SourceWarehouseID *int64
	DestWarehouseID   *int64
	VendorID          *int64
	CustomerID        *int64
}

// ValidateCreate aplica la política de campos requeridos por tipo antes de
// cualquier llamada de red (primera línea de defensa; el backend es la
// autoridad final):
//
//	IN  : product, quantity, dest_warehouse; vendor opcional; source_warehouse anulado
//	OUT : product, quantity, source_warehouse; customer opcional; dest_warehouse anulado
//	INT : product, quantity, ambas bodegas (distintas entre sí)
//	ADJ : product, quantity y una bodega, espejada en source y dest
//
// Si falta un campo requerido devuelve un error que envuelve domain.ErrInvalidInput
// con los campos ausentes; la operación se aborta sin gastar round-trip.
func ValidateCreate(in CreateMoveInput) (*CreatePayload, error) {
	if !in.MoveType.Valid() {
		return nil, fmt.Errorf("%w: move_type desconocido %q", domain.ErrInvalidInput, in.MoveType)
	}

	var missing []string
	if in.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if in.Quantity == nil {
		missing = append(missing, "quantity")
	}

	p := &CreatePayload{
		MoveType:       in.MoveType,
		SourceLocation: in.SourceLocation,
		DestLocation:   in.DestLocation,
	}

	switch in.MoveType {
	case entity.MoveTypeIn:
		if in.DestWarehouseID == nil {
			missing = append(missing, "dest_warehouse_id")
		}
		p.DestWarehouseID = in.DestWarehouseID
		p.VendorID = in.VendorID

	case entity.MoveTypeOut:
		if in.SourceWarehouseID == nil {
			missing = append(missing, "source_warehouse_id")
		}
		p.SourceWarehouseID = in.SourceWarehouseID
		p.CustomerID = in.CustomerID

	case entity.MoveTypeInternal:
		if in.SourceWarehouseID == nil {
			missing = append(missing, "source_warehouse_id")
		}
		if in.DestWarehouseID == nil {
			missing = append(missing, "dest_warehouse_id")
		}
		if in.SourceWarehouseID != nil && in.DestWarehouseID != nil && *in.SourceWarehouseID == *in.DestWarehouseID {
			return nil, fmt.Errorf("%w: un traslado interno requiere bodegas origen y destino distintas", domain.ErrInvalidInput)
		}
		p.SourceWarehouseID = in.SourceWarehouseID
		p.DestWarehouseID = in.DestWarehouseID

	case entity.MoveTypeAdjustment:
		// Una única selección de bodega se espeja en origen y destino: el
		// ajuste neto aplica contra una sola ubicación sea cual sea el signo.
		wh := in.SourceWarehouseID
		if wh == nil {
			wh = in.DestWarehouseID
		}
		if wh == nil {
			missing = append(missing, "warehouse_id")
		}
		p.SourceWarehouseID = wh
		p.DestWarehouseID = wh
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan campos requeridos para %s: %s",
			domain.ErrInvalidInput, in.MoveType, strings.Join(missing, ", "))
	}

	p.ProductID = *in.ProductID
	p.Quantity = *in.Quantity

	if p.Quantity == 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser cero", domain.ErrInvalidInput)
	}
	// Solo el ajuste admite signo; en el resto la dirección la da el tipo.
	if in.MoveType != entity.MoveTypeAdjustment && p.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity debe ser positiva para %s", domain.ErrInvalidInput, in.MoveType)
	}

	return p, nil
}
