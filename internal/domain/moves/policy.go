// Package moves contiene la lógica pura del flujo de movimientos: la política
// de transición de estados, la validación de campos por tipo y el filtrado de
// listados. Sin dependencias externas ni estado ambiental, como el resto de
// internal/domain.
package moves

import "github.com/stockmaster/ops-gateway/internal/domain/entity"

// NextStatuses devuelve, en orden, los estados a los que un movimiento puede
// transicionar desde s:
//
//	draft     -> waiting, cancelled
//	waiting   -> ready, cancelled
//	ready     -> done, cancelled
//	done      -> (terminal)
//	cancelled -> draft
//
// Un estado no reconocido devuelve el conjunto vacío: no es un error, simplemente
// no ofrece acciones. La copia del backend de esta misma tabla es la autoridad;
// esta versión local solo evita round-trips que van a ser rechazados.
func NextStatuses(s entity.Status) []entity.Status {
	switch s {
	case entity.StatusDraft:
		return []entity.Status{entity.StatusWaiting, entity.StatusCancelled}
	case entity.StatusWaiting:
		return []entity.Status{entity.StatusReady, entity.StatusCancelled}
	case entity.StatusReady:
		return []entity.Status{entity.StatusDone, entity.StatusCancelled}
	case entity.StatusDone:
		return nil
	case entity.StatusCancelled:
		return []entity.Status{entity.StatusDraft}
	default:
		return nil
	}
}

// CanTransition indica si el paso from -> to está en la tabla.
func CanTransition(from, to entity.Status) bool {
	for _, next := range NextStatuses(from) {
		if next == to {
			return true
		}
	}
	return false
}

// CanValidate indica si el movimiento admite la acción "Validate" (finalización
// con efectos de stock). Solo se ofrece en ready; es una acción distinta de
// marcar done, porque el backend puede rechazarla (p.ej. stock insuficiente).
func CanValidate(s entity.Status) bool {
	return s == entity.StatusReady
}
