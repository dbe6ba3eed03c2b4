package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/report"
)

// ReportHandler expone los reportes tabulares de solo lectura (protegido).
type ReportHandler struct {
	uc *report.AggregatorUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.AggregatorUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PerishableMovement godoc
// @Summary      Movimientos IN/OUT por producto en una ventana
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business  query  string  true  "Negocio"
// @Param        from      query  string  true  "YYYY-MM-DD"
// @Param        to        query  string  true  "YYYY-MM-DD"
// @Success      200  {array}  dto.PerishableMovementRow
// @Router       /api/reports/perishable-movement [get]
func (h *ReportHandler) PerishableMovement(c *fiber.Ctx) error {
	out, err := h.uc.PerishableMovement(c.Context(), GetScope(c),
		c.Query("business"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpiryLots godoc
// @Summary      Lotes por vencimiento con clasificación de detalle
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business  query  string  true   "Negocio"
// @Param        from      query  string  false  "YYYY-MM-DD"
// @Param        to        query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.ExpiryLotReportRow
// @Router       /api/reports/expiry-lots [get]
func (h *ReportHandler) ExpiryLots(c *fiber.Ctx) error {
	out, err := h.uc.ExpiryLots(c.Context(), GetScope(c),
		c.Query("business"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeliveryLog godoc
// @Summary      Historial literal de entregas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business  query  string  true   "Negocio"
// @Param        from      query  string  false  "YYYY-MM-DD"
// @Param        to        query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.DeliveryLogReportRow
// @Router       /api/reports/delivery-log [get]
func (h *ReportHandler) DeliveryLog(c *fiber.Ctx) error {
	out, err := h.uc.DeliveryLog(c.Context(), GetScope(c),
		c.Query("business"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WithdrawalLog godoc
// @Summary      Historial literal de salidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business  query  string  true   "Negocio"
// @Param        from      query  string  false  "YYYY-MM-DD"
// @Param        to        query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.WithdrawalLogReportRow
// @Router       /api/reports/withdrawal-log [get]
func (h *ReportHandler) WithdrawalLog(c *fiber.Ctx) error {
	out, err := h.uc.WithdrawalLog(c.Context(), GetScope(c),
		c.Query("business"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssetStatusBreakdown godoc
// @Summary      Estados de activos con participación porcentual
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business        query  string  true   "Negocio"
// @Param        inventory_type  query  string  false  "Tipo de inventario"
// @Success      200  {array}  dto.AssetStatusReportRow
// @Router       /api/reports/asset-statuses [get]
func (h *ReportHandler) AssetStatusBreakdown(c *fiber.Ctx) error {
	out, err := h.uc.AssetStatusBreakdown(c.Context(), GetScope(c),
		c.Query("business"), c.Query("inventory_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssetAcquisitions godoc
// @Summary      Adquisiciones literales con totales de la ventana
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business        query  string  true   "Negocio"
// @Param        inventory_type  query  string  false  "Tipo de inventario"
// @Param        from            query  string  false  "YYYY-MM-DD"
// @Param        to              query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.AssetAcquisitionReport
// @Router       /api/reports/asset-acquisitions [get]
func (h *ReportHandler) AssetAcquisitions(c *fiber.Ctx) error {
	out, err := h.uc.AssetAcquisitions(c.Context(), GetScope(c),
		c.Query("business"), c.Query("inventory_type"), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssetsSummary godoc
// @Summary      Resumen de activos agrupados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        business        query  string  true   "Negocio"
// @Param        inventory_type  query  string  false  "Tipo de inventario"
// @Success      200  {array}  dto.AssetSummaryReportRow
// @Router       /api/reports/assets-summary [get]
func (h *ReportHandler) AssetsSummary(c *fiber.Ctx) error {
	out, err := h.uc.AssetsSummary(c.Context(), GetScope(c),
		c.Query("business"), c.Query("inventory_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
