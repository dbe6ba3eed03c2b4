package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/stock"
)

// StockHandler maneja el libro mayor de perecederos: eventos IN/OUT y las
// cifras de stock derivadas (protegido).
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RecordDelivery godoc
// @Summary      Registrar entrega (evento IN)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordDeliveryRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.DeliveryEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/deliveries [post]
func (h *StockHandler) RecordDelivery(c *fiber.Ctx) error {
	var in dto.RecordDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordDelivery(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDelivery godoc
// @Summary      Editar entrega
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DeliveryEventResponse
// @Router       /api/stock/deliveries/{id} [put]
func (h *StockHandler) UpdateDelivery(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDelivery(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDelivery godoc
// @Summary      Eliminar entrega (cascada sobre sus lotes)
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Router       /api/stock/deliveries/{id} [delete]
func (h *StockHandler) DeleteDelivery(c *fiber.Ctx) error {
	if err := h.uc.DeleteDelivery(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordWithdrawal godoc
// @Summary      Registrar salida (evento OUT, sin chequeo de disponibilidad)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordWithdrawalRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.WithdrawalEventResponse
// @Router       /api/stock/withdrawals [post]
func (h *StockHandler) RecordWithdrawal(c *fiber.Ctx) error {
	var in dto.RecordWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordWithdrawal(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateWithdrawal godoc
// @Summary      Editar salida
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.UpdateWithdrawalRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WithdrawalEventResponse
// @Router       /api/stock/withdrawals/{id} [put]
func (h *StockHandler) UpdateWithdrawal(c *fiber.Ctx) error {
	var in dto.UpdateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateWithdrawal(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteWithdrawal godoc
// @Summary      Eliminar salida
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Router       /api/stock/withdrawals/{id} [delete]
func (h *StockHandler) DeleteWithdrawal(c *fiber.Ctx) error {
	if err := h.uc.DeleteWithdrawal(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ComputeStock godoc
// @Summary      Cifras de stock derivadas de un producto
// @Description  Con from/to los totales IN/OUT se restringen a la ventana; el saldo final siempre es de historia completa.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {object}  dto.StockFigures
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ComputeStock(c *fiber.Ctx) error {
	out, err := h.uc.ComputeStock(c.Context(), GetScope(c), c.Params("id"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Listado de stock por producto de un negocio
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        business  query  string  true   "Negocio"
// @Param        search    query  string  false  "Texto de búsqueda"
// @Param        category  query  string  false  "Categoría"
// @Success      200  {array}  dto.StockRow
// @Router       /api/stock [get]
func (h *StockHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.uc.ListStock(c.Context(), GetScope(c), c.Query("business"), c.Query("search"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListDeliveries godoc
// @Summary      Entregas de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.DeliveryEventResponse
// @Router       /api/products/{id}/deliveries [get]
func (h *StockHandler) ListDeliveries(c *fiber.Ctx) error {
	out, err := h.uc.ListDeliveries(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListWithdrawals godoc
// @Summary      Salidas de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.WithdrawalEventResponse
// @Router       /api/products/{id}/withdrawals [get]
func (h *StockHandler) ListWithdrawals(c *fiber.Ctx) error {
	out, err := h.uc.ListWithdrawals(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
