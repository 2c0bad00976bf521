package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/application/reports"
)

// ReportsHandler maneja reportes y dashboard (protegido).
type ReportsHandler struct {
	uc    *reports.UseCase
	pdfUC *reports.PDFUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase, pdfUC *reports.PDFUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc, pdfUC: pdfUC}
}

// SalesSummary godoc
// @Summary      Resumen de ventas agrupado por periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day | week | month | year"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.SalesPeriodDTO
// @Router       /api/reports/sales [get]
func (h *ReportsHandler) SalesSummary(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.SalesSummary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 10)"
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportsHandler) TopProducts(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.TopProducts(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByCategory godoc
// @Summary      Valor vendido por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategorySalesDTO
// @Router       /api/reports/sales-by-category [get]
func (h *ReportsHandler) SalesByCategory(c *fiber.Ctx) error {
	out, err := h.uc.SalesByCategory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos por debajo de su cantidad mínima
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockReportPDF godoc
// @Summary      Descargar el reporte de existencias en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock/pdf [get]
func (h *ReportsHandler) StockReportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Dashboard godoc
// @Summary      Agregados para la pantalla principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
