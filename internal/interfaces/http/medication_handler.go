package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/medication"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
)

// MedicationHandler maneja el catálogo de medicamentos (protegido).
type MedicationHandler struct {
	uc *medication.UseCase
}

// NewMedicationHandler construye el handler.
func NewMedicationHandler(uc *medication.UseCase) *MedicationHandler {
	return &MedicationHandler{uc: uc}
}

// Create da de alta un medicamento (solo admin, va detrás de RequireAdmin en el router).
func (h *MedicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	med, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapMedicationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(med)
}

// GetByID devuelve un medicamento.
func (h *MedicationHandler) GetByID(c *fiber.Ctx) error {
	med, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapMedicationError(c, err)
	}
	return c.JSON(med)
}

// GetStock devuelve solo el stock actual de un medicamento.
func (h *MedicationHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.uc.GetStock(c.Context(), c.Params("id"))
	if err != nil {
		return mapMedicationError(c, err)
	}
	return c.JSON(fiber.Map{"medication_id": c.Params("id"), "stock": stock})
}

// Update modifica datos de catálogo (nunca stock; solo admin).
func (h *MedicationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	med, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapMedicationError(c, err)
	}
	return c.JSON(med)
}

// List lista el catálogo. Con ?category=<substring> filtra por categoría
// (case-insensitive); con ?below_minimum=true devuelve solo los críticos.
func (h *MedicationHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("below_minimum") {
		meds, err := h.uc.ListBelowMinimum(c.Context())
		if err != nil {
			return mapMedicationError(c, err)
		}
		return c.JSON(fiber.Map{"total": len(meds), "medications": meds})
	}
	if pattern := c.Query("category"); pattern != "" {
		meds, err := h.uc.ListByCategoryPattern(c.Context(), pattern)
		if err != nil {
			return mapMedicationError(c, err)
		}
		return c.JSON(fiber.Map{"total": len(meds), "medications": meds})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	meds, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapMedicationError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(meds), "medications": meds})
}

func mapMedicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un medicamento con ese nombre"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
