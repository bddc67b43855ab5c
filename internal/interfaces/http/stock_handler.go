package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// StockHandler maneja el uso de medicamentos, ajustes manuales y las vistas
// del libro de stock y del historial de administraciones (protegido).
type StockHandler struct {
	useUC     *stock.UseMedicationUseCase
	adjustUC  *stock.AdjustStockUseCase
	logRepo   repository.StockLogRepository
	usageRepo repository.UsageHistoryRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(
	useUC *stock.UseMedicationUseCase,
	adjustUC *stock.AdjustStockUseCase,
	logRepo repository.StockLogRepository,
	usageRepo repository.UsageHistoryRepository,
) *StockHandler {
	return &StockHandler{useUC: useUC, adjustUC: adjustUC, logRepo: logRepo, usageRepo: usageRepo}
}

// UseMedications registra la administración de uno o varios medicamentos de
// una visita. Todo o nada: si un ítem falla, no se aplica ninguno.
func (h *StockHandler) UseMedications(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UseMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results, err := h.useUC.UseMedications(c.Context(), stock.UseMedicationInput{
		ActorID:   actorID,
		PatientID: in.PatientID,
		VisitID:   in.VisitID,
		Items:     in.Items,
	})
	if err != nil {
		return mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"results": results})
}

// AdjustStock aplica una corrección manual con delta con signo (solo admin).
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.adjustUC.Adjust(c.Context(), actorID, in.MedicationID, in.Quantity, in.Reason)
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{
		"medication_id": result.MedicationID,
		"name":          result.Name,
		"delta":         result.Delta,
		"new_stock":     result.NewStock,
	})
}

// ListLog lista las entradas del libro de stock de un medicamento.
func (h *StockHandler) ListLog(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	entries, err := h.logRepo.ListByMedication(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(entries), "entries": toLogResponses(entries)})
}

// ListUsageByMedication lista el historial de administraciones de un medicamento.
func (h *StockHandler) ListUsageByMedication(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	records, err := h.usageRepo.ListByMedication(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(records), "usages": toUsageResponses(records)})
}

// ListUsageByPatient lista las administraciones a una mascota.
func (h *StockHandler) ListUsageByPatient(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	records, err := h.usageRepo.ListByPatient(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(records), "usages": toUsageResponses(records)})
}

// mapStockError traduce errores de dominio del libro de stock a HTTP.
func mapStockError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":          "INSUFFICIENT_STOCK",
			"message":       insufficient.Error(),
			"medication_id": insufficient.MedicationID,
			"available":     insufficient.Available,
			"requested":     insufficient.Requested,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "transición de estado no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toLogResponses(entries []*entity.StockLogEntry) []dto.StockLogEntryResponse {
	out := make([]dto.StockLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockLogEntryResponse{
			ID:           e.ID,
			MedicationID: e.MedicationID,
			Action:       e.Action,
			Delta:        e.Delta,
			Before:       e.Before,
			After:        e.After,
			Reason:       e.Reason,
			ActorID:      e.ActorID,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}

func toUsageResponses(records []*entity.UsageHistoryRecord) []dto.UsageHistoryResponse {
	out := make([]dto.UsageHistoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.UsageHistoryResponse{
			ID:                r.ID,
			MedicationID:      r.MedicationID,
			VisitID:           r.VisitID,
			ActorID:           r.ActorID,
			PatientID:         r.PatientID,
			Quantity:          r.Quantity,
			Dosage:            r.Dosage,
			Duration:          r.Duration,
			PrescriptionNotes: r.PrescriptionNotes,
			Notes:             r.Notes,
			MedicationType:    r.MedicationType,
			CreatedAt:         r.CreatedAt,
		})
	}
	return out
}
