package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/ops-gateway/internal/application/dto"
	"github.com/stockmaster/ops-gateway/internal/domain"
)

// respondError traduce errores de dominio/backend al cuerpo de error HTTP.
// El detail estructurado del backend se muestra textual al operador; si no
// hay detalle (o el fallo es de transporte) se usa el fallback de la acción.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var remote *domain.RemoteError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrIllegalTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	case errors.As(err, &remote):
		msg := remote.Detail
		if msg == "" {
			msg = fallback
		}
		status := remote.StatusCode
		if status < fiber.StatusBadRequest || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "BACKEND_REJECTED", Message: msg})
	default:
		// transporte u otro fallo: sin reintentos automáticos, el operador decide
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: fallback})
	}
}
