package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/ops-gateway/internal/application/dto"
	appmoves "github.com/stockmaster/ops-gateway/internal/application/moves"
)

// ReferenceHandler expone las lecturas de referencia (productos, proveedores,
// clientes, bodegas) que el UI necesita para llenar selects y resolver nombres.
type ReferenceHandler struct {
	refs appmoves.ReferenceDirectory
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(refs appmoves.ReferenceDirectory) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

// Products godoc
// @Summary      Listar productos
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/ [get]
func (h *ReferenceHandler) Products(c *fiber.Ctx) error {
	list, err := h.refs.Products(c.Context())
	if err != nil {
		return respondError(c, err, "no se pudo consultar productos")
	}
	return c.JSON(dto.ToProductResponses(list))
}

// Vendors godoc
// @Summary      Listar proveedores
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VendorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/vendors/ [get]
func (h *ReferenceHandler) Vendors(c *fiber.Ctx) error {
	list, err := h.refs.Vendors(c.Context())
	if err != nil {
		return respondError(c, err, "no se pudo consultar proveedores")
	}
	return c.JSON(dto.ToVendorResponses(list))
}

// Customers godoc
// @Summary      Listar clientes
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/customers/ [get]
func (h *ReferenceHandler) Customers(c *fiber.Ctx) error {
	list, err := h.refs.Customers(c.Context())
	if err != nil {
		return respondError(c, err, "no se pudo consultar clientes")
	}
	return c.JSON(dto.ToCustomerResponses(list))
}

// Warehouses godoc
// @Summary      Listar bodegas
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/warehouses/ [get]
func (h *ReferenceHandler) Warehouses(c *fiber.Ctx) error {
	list, err := h.refs.Warehouses(c.Context())
	if err != nil {
		return respondError(c, err, "no se pudo consultar bodegas")
	}
	return c.JSON(dto.ToWarehouseResponses(list))
}
