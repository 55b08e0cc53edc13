package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrIllegalTransition = errors.New("transición de estado no permitida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// RemoteError es un rechazo del backend de inventario (la autoridad de los datos).
// Detail transporta el mensaje estructurado del backend para mostrarlo textual
// al operador; si llega vacío, el handler usa un mensaje genérico por acción.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend (%d): rechazo sin detalle", e.StatusCode)
}
