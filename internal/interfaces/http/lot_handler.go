package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/batch"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
)

// LotHandler maneja los lotes de vencimiento de los eventos IN (protegido).
type LotHandler struct {
	uc *batch.AllocatorUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *batch.AllocatorUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// AddLot godoc
// @Summary      Asignar un lote de vencimiento a una entrega
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento IN"
// @Param        body  body  dto.AddLotRequest  true  "Lote (expiry_date vacío = sin clasificar)"
// @Success      201   {object}  dto.LotResponse
// @Failure      409   {object}  dto.ErrorResponse  "La suma de lotes superaría la cantidad del evento"
// @Router       /api/stock/deliveries/{id}/lots [post]
func (h *LotHandler) AddLot(c *fiber.Ctx) error {
	var in dto.AddLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddLot(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveLot godoc
// @Summary      Eliminar un lote (libera cantidad, sin condiciones)
// @Tags         lots
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Router       /api/lots/{id} [delete]
func (h *LotHandler) RemoveLot(c *fiber.Ctx) error {
	if err := h.uc.RemoveLot(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLots godoc
// @Summary      Lotes de una entrega con clasificación de detalle
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del evento IN"
// @Success      200  {array}  dto.LotResponse
// @Router       /api/stock/deliveries/{id}/lots [get]
func (h *LotHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.uc.ListLots(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListProductLots godoc
// @Summary      Todos los lotes de un producto con clasificación de detalle
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.LotResponse
// @Router       /api/products/{id}/lots [get]
func (h *LotHandler) ListProductLots(c *fiber.Ctx) error {
	out, err := h.uc.ListProductLots(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
