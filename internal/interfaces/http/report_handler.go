package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/reports"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
)

// ReportHandler expone el reporte PDF del libro de sustancias controladas.
type ReportHandler struct {
	uc *reports.LedgerReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.LedgerReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ControlledLedger genera el PDF del libro para el rango ?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Sin parámetros usa los últimos 30 días. Solo admin.
func (h *ReportHandler) ControlledLedger(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato YYYY-MM-DD"})
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato YYYY-MM-DD"})
		}
		// inclusivo hasta el fin del día
		to = t.Add(24*time.Hour - time.Nanosecond)
	}

	pdfBytes, err := h.uc.GenerateControlledLedger(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("libro-controlados-%s-%s.pdf", from.Format("20060102"), to.Format("20060102"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
