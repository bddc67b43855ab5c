package dto

import "time"

// UseMedicationItem un medicamento administrado dentro de una visita.
type UseMedicationItem struct {
	MedicationID      string `json:"medication_id" validate:"required,uuid"`
	Quantity          int64  `json:"quantity" validate:"required,min=1"`
	Dosage            string `json:"dosage,omitempty"`
	Duration          string `json:"duration,omitempty"`
	PrescriptionNotes string `json:"prescription_notes,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// UseMedicationRequest body para POST /api/stock/usages.
// Uno o varios medicamentos administrados en la misma visita clínica;
// todos los efectos se aplican en una sola transacción.
type UseMedicationRequest struct {
	PatientID *string             `json:"patient_id,omitempty"`
	VisitID   *string             `json:"visit_id,omitempty"`
	Items     []UseMedicationItem `json:"items" validate:"required,min=1"`
}

// UseMedicationResult resultado por medicamento procesado.
type UseMedicationResult struct {
	MedicationID   string `json:"medication_id"`
	Name           string `json:"name"`
	QuantityUsed   int64  `json:"quantity_used"`
	RemainingStock int64  `json:"remaining_stock"`
}

// CreateRestockRequest body para POST /api/restocks.
type CreateRestockRequest struct {
	MedicationID string `json:"medication_id" validate:"required,uuid"`
	Quantity     int64  `json:"quantity" validate:"required,min=1"`
}

// RestockResponse salida de una solicitud de reposición.
type RestockResponse struct {
	ID           string     `json:"id"`
	MedicationID string     `json:"medication_id"`
	RequesterID  string     `json:"requester_id"`
	Quantity     int64      `json:"quantity"`
	Status       string     `json:"status"`
	ApproverID   *string    `json:"approver_id,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AdjustStockRequest body para POST /api/stock/adjustments.
// Quantity con signo: positivo suma, negativo resta.
type AdjustStockRequest struct {
	MedicationID string `json:"medication_id" validate:"required,uuid"`
	Quantity     int64  `json:"quantity" validate:"required"`
	Reason       string `json:"reason,omitempty"`
}

// StockLogEntryResponse una entrada del libro de stock.
type StockLogEntryResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	Action       string    `json:"action"`
	Delta        int64     `json:"delta"`
	Before       int64     `json:"before"`
	After        int64     `json:"after"`
	Reason       string    `json:"reason,omitempty"`
	ActorID      string    `json:"actor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UsageHistoryResponse un registro del historial de administraciones.
type UsageHistoryResponse struct {
	ID                string    `json:"id"`
	MedicationID      string    `json:"medication_id"`
	VisitID           *string   `json:"visit_id,omitempty"`
	ActorID           string    `json:"actor_id"`
	PatientID         *string   `json:"patient_id,omitempty"`
	Quantity          int64     `json:"quantity"`
	Dosage            string    `json:"dosage,omitempty"`
	Duration          string    `json:"duration,omitempty"`
	PrescriptionNotes string    `json:"prescription_notes,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	MedicationType    string    `json:"medication_type"`
	CreatedAt         time.Time `json:"created_at"`
}

// NotificationResponse una notificación administrativa.
type NotificationResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	MedicationID *string   `json:"medication_id,omitempty"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}
