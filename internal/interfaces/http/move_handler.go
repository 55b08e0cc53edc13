package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/ops-gateway/internal/application/dto"
	appmoves "github.com/stockmaster/ops-gateway/internal/application/moves"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	domainmoves "github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// MoveHandler maneja las peticiones HTTP del flujo de movimientos (protegido).
type MoveHandler struct {
	uc    *appmoves.UseCase
	docUC *appmoves.DocumentUseCase
}

// NewMoveHandler construye el handler.
func NewMoveHandler(uc *appmoves.UseCase, docUC *appmoves.DocumentUseCase) *MoveHandler {
	return &MoveHandler{uc: uc, docUC: docUC}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        move_type  query  string  false  "IN | OUT | INT | ADJ"
// @Param        status     query  string  false  "draft | waiting | ready | done | cancelled"
// @Param        search     query  string  false  "Busca en referencia, origen y destino"
// @Param        limit      query  int     false  "Máximo de resultados"
// @Success      200  {object}  dto.MoveListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/operations/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	f := domainmoves.ListFilters{
		MoveType: c.Query("move_type"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Limit:    c.QueryInt("limit", 0),
	}
	list, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err, "no se pudo consultar el listado de movimientos")
	}
	return c.JSON(dto.ToMoveListResponse(list))
}

// Create godoc
// @Summary      Crear un movimiento de stock (en draft)
// @Description  Valida los campos requeridos según el tipo antes de llamar al
//
//	backend; un campo faltante se rechaza sin round-trip.
//
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveRequest  true  "move_type, product_id, quantity y las bodegas/actores del tipo"
// @Success      201  {object}  dto.MoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/operations/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		// cubre también cantidades no numéricas: el borde rechaza antes de validar
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(c.Context(), domainmoves.CreateMoveInput{
		MoveType:          entity.MoveType(in.MoveType),
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		SourceLocation:    in.SourceLocation,
		DestLocation:      in.DestLocation,
		SourceWarehouseID: in.SourceWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		VendorID:          in.VendorID,
		CustomerID:        in.CustomerID,
	})
	if err != nil {
		return respondError(c, err, "no se pudo crear el movimiento")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMoveResponse(created))
}

// Validate godoc
// @Summary      Validar un movimiento (finalización con efectos de stock)
// @Description  Acción distinta de marcar done: el backend puede rechazarla,
//
//	p.ej. por stock insuficiente, y el detail se muestra textual.
//
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/moves/{id}/validate [post]
func (h *MoveHandler) Validate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	m, err := h.uc.Validate(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "no se pudo validar el movimiento")
	}
	return c.JSON(dto.ToMoveResponse(m))
}

// ChangeStatus godoc
// @Summary      Transicionar el estado de un movimiento
// @Description  El gateway pre-verifica la tabla de transiciones (UX) y el
//
//	backend la re-valida como autoridad.
//
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id          path   int     true  "ID del movimiento"
// @Param        new_status  query  string  true  "draft | waiting | ready | done | cancelled"
// @Success      200  {object}  dto.MoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/operations/moves/{id}/status [post]
func (h *MoveHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	newStatus := c.Query("new_status")
	if newStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_status requerido"})
	}
	m, err := h.uc.ChangeStatus(c.Context(), int64(id), entity.Status(newStatus))
	if err != nil {
		return respondError(c, err, "no se pudo cambiar el estado del movimiento")
	}
	return c.JSON(dto.ToMoveResponse(m))
}

// Actions godoc
// @Summary      Acciones disponibles de un movimiento
// @Description  Un botón por estado siguiente legal ("Mark <status>" / "Cancel")
//
//	más el flag de Validate cuando está en ready. Un estado
//	desconocido presenta cero acciones.
//
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MoveActionsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/moves/{id}/actions [get]
func (h *MoveHandler) Actions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	current, actions, canValidate, err := h.uc.Actions(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "no se pudo consultar el movimiento")
	}
	items := make([]dto.MoveActionDTO, 0, len(actions))
	for _, a := range actions {
		items = append(items, dto.MoveActionDTO{NextStatus: string(a.Next), Label: a.Label})
	}
	return c.JSON(dto.MoveActionsResponse{
		ID:          current.ID,
		Status:      string(current.Status),
		Actions:     items,
		CanValidate: canValidate,
	})
}

// Document godoc
// @Summary      Documento imprimible del movimiento (PDF)
// @Description  Resuelve producto/vendor/cliente/bodegas y entrega el PDF
//
//	inline para el diálogo de impresión. Imprimir es mejor-esfuerzo:
//	ningún estado del backend depende del render.
//
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/moves/{id}/document [get]
func (h *MoveHandler) Document(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	data, filename, err := h.docUC.Render(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "no se pudo generar el documento")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
