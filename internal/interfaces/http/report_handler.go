package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reventa-api/internal/application/reports"
)

// ReportHandler maneja la descarga del informe financiero mensual.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadMonthly godoc
// @Summary      Descargar el informe mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        period  query  string  false  "mes a informar, formato AAAA-MM (default: mes en curso)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) DownloadMonthly(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadMonthlyReport(c.Context(), GetUserID(c), c.Query("period"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
