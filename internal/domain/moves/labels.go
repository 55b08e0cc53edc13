package moves

import "github.com/stockmaster/ops-gateway/internal/domain/entity"

// TypeLabel devuelve el título del documento imprimible para un tipo de
// movimiento. Un tipo no reconocido se muestra tal cual.
func TypeLabel(t entity.MoveType) string {
	switch t {
	case entity.MoveTypeIn:
		return "RECEIPT"
	case entity.MoveTypeOut:
		return "DELIVERY ORDER"
	case entity.MoveTypeInternal:
		return "INTERNAL TRANSFER"
	case entity.MoveTypeAdjustment:
		return "STOCK ADJUSTMENT"
	default:
		return string(t)
	}
}

// ActionLabel devuelve la etiqueta del botón de transición hacia next:
// "Mark <status>" salvo cancelled, que se etiqueta "Cancel".
func ActionLabel(next entity.Status) string {
	if next == entity.StatusCancelled {
		return "Cancel"
	}
	return "Mark " + string(next)
}
