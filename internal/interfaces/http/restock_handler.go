package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/pkg/logger"
)

// RestockHandler maneja el workflow de solicitudes de reposición.
type RestockHandler struct {
	uc  *stock.RestockUseCase
	log *logger.Logger
}

// NewRestockHandler construye el handler.
func NewRestockHandler(uc *stock.RestockUseCase, log *logger.Logger) *RestockHandler {
	return &RestockHandler{uc: uc, log: log}
}

// Create crea una solicitud de reposición en estado pending.
func (h *RestockHandler) Create(c *fiber.Ctx) error {
	requesterID := GetUserID(c)
	if requesterID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateRestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	req, err := h.uc.Request(c.Context(), in.MedicationID, in.Quantity, requesterID)
	if err != nil {
		return mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRestockResponse(req))
}

// Approve pasa una solicitud pending a approved (solo admin).
func (h *RestockHandler) Approve(c *fiber.Ctx) error {
	req, err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(toRestockResponse(req))
}

// Reject pasa una solicitud pending a rejected (solo admin).
func (h *RestockHandler) Reject(c *fiber.Ctx) error {
	req, err := h.uc.Reject(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(toRestockResponse(req))
}

// Complete pasa una solicitud approved a completed e incrementa el stock
// en la misma transacción (solo admin).
func (h *RestockHandler) Complete(c *fiber.Ctx) error {
	req, err := h.uc.Complete(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(toRestockResponse(req))
}

// Delete elimina una solicitud en cualquier estado (solo admin). Borrar una
// solicitud no terminal descarta su rastro, así que queda registrado como warning.
func (h *RestockHandler) Delete(c *fiber.Ctx) error {
	req, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return mapStockError(c, err)
	}
	if !req.IsTerminal() {
		h.log.Warn().
			Str("request_id", req.ID).
			Str("status", req.Status).
			Str("admin_id", GetUserID(c)).
			Msg("solicitud de reposición no terminal eliminada")
	}
	return c.JSON(fiber.Map{"deleted": true, "request": toRestockResponse(req)})
}

// List lista solicitudes por estado (?status=pending por defecto).
func (h *RestockHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", entity.RestockStatusPending)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	reqs, err := h.uc.ListByStatus(c.Context(), status, page.Limit, page.Offset)
	if err != nil {
		return mapStockError(c, err)
	}
	out := make([]dto.RestockResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRestockResponse(r))
	}
	return c.JSON(fiber.Map{"total": len(out), "requests": out})
}

func toRestockResponse(r *entity.RestockRequest) dto.RestockResponse {
	return dto.RestockResponse{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		RequesterID:  r.RequesterID,
		Quantity:     r.Quantity,
		Status:       r.Status,
		ApproverID:   r.ApproverID,
		ApprovedAt:   r.ApprovedAt,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
