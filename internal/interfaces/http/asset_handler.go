package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/asset"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
)

// AssetHandler maneja los activos fijos y sus dos desgloses (protegido).
type AssetHandler struct {
	uc *asset.LedgerUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *asset.LedgerUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear activo fijo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateAsset(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo con agregados de adquisición
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetAsset(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos de un negocio
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        business        query  string  true   "Negocio"
// @Param        inventory_type  query  string  false  "Tipo de inventario"
// @Param        search          query  string  false  "Texto de búsqueda"
// @Param        type            query  string  false  "Tipo de activo"
// @Success      200  {array}  dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAssets(c.Context(), GetScope(c),
		c.Query("business"), c.Query("inventory_type"), c.Query("search"), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo (bajar quantity no revalida los desgloses)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AssetResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateAsset(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo (cascada sobre sus desgloses)
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "ID del activo"
// @Success      204
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteAsset(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Duplicate godoc
// @Summary      Duplicar activo (copia profunda, nombre con sufijo " (copy)")
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo origen"
// @Success      201  {object}  dto.AssetResponse
// @Router       /api/assets/{id}/duplicate [post]
func (h *AssetHandler) Duplicate(c *fiber.Ctx) error {
	out, err := h.uc.DuplicateAsset(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddStatusAllocation godoc
// @Summary      Asignar cantidad del activo a un estado
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.AddStatusAllocationRequest  true  "Asignación"
// @Success      201   {object}  dto.StatusAllocationResponse
// @Failure      409   {object}  dto.ErrorResponse  "La suma superaría la cantidad declarada"
// @Router       /api/assets/{id}/statuses [post]
func (h *AssetHandler) AddStatusAllocation(c *fiber.Ctx) error {
	var in dto.AddStatusAllocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddStatusAllocation(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatusAllocation godoc
// @Summary      Editar asignación de estado (la suma excluye la fila editada)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.AddStatusAllocationRequest  true  "Asignación"
// @Success      200   {object}  dto.StatusAllocationResponse
// @Router       /api/asset-statuses/{id} [put]
func (h *AssetHandler) UpdateStatusAllocation(c *fiber.Ctx) error {
	var in dto.AddStatusAllocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatusAllocation(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveStatusAllocation godoc
// @Summary      Eliminar asignación de estado
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "ID de la asignación"
// @Success      204
// @Router       /api/asset-statuses/{id} [delete]
func (h *AssetHandler) RemoveStatusAllocation(c *fiber.Ctx) error {
	if err := h.uc.RemoveStatusAllocation(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListStatusAllocations godoc
// @Summary      Desglose por estado de un activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {array}  dto.StatusAllocationResponse
// @Router       /api/assets/{id}/statuses [get]
func (h *AssetHandler) ListStatusAllocations(c *fiber.Ctx) error {
	out, err := h.uc.ListStatusAllocations(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddAcquisitionLot godoc
// @Summary      Registrar lote de adquisición (costos por unidad)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.AddAcquisitionLotRequest  true  "Lote"
// @Success      201   {object}  dto.AcquisitionLotResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/acquisitions [post]
func (h *AssetHandler) AddAcquisitionLot(c *fiber.Ctx) error {
	var in dto.AddAcquisitionLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddAcquisitionLot(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAcquisitionLot godoc
// @Summary      Editar lote de adquisición
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.AddAcquisitionLotRequest  true  "Lote"
// @Success      200   {object}  dto.AcquisitionLotResponse
// @Router       /api/acquisitions/{id} [put]
func (h *AssetHandler) UpdateAcquisitionLot(c *fiber.Ctx) error {
	var in dto.AddAcquisitionLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateAcquisitionLot(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveAcquisitionLot godoc
// @Summary      Eliminar lote de adquisición
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Router       /api/acquisitions/{id} [delete]
func (h *AssetHandler) RemoveAcquisitionLot(c *fiber.Ctx) error {
	if err := h.uc.RemoveAcquisitionLot(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAcquisitionLots godoc
// @Summary      Desglose por adquisición de un activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {array}  dto.AcquisitionLotResponse
// @Router       /api/assets/{id}/acquisitions [get]
func (h *AssetHandler) ListAcquisitionLots(c *fiber.Ctx) error {
	out, err := h.uc.ListAcquisitionLots(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AcquisitionTotals godoc
// @Summary      Agregados de adquisición derivados de un activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {object}  dto.AcquisitionTotalsResponse
// @Router       /api/assets/{id}/acquisitions/totals [get]
func (h *AssetHandler) AcquisitionTotals(c *fiber.Ctx) error {
	out, err := h.uc.AcquisitionTotals(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
