package entity

import "time"

// Estados de una solicitud de reposición.
// pending -> approved | rejected ; approved -> completed.
// rejected y completed son terminales.
const (
	RestockStatusPending   = "pending"
	RestockStatusApproved  = "approved"
	RestockStatusRejected  = "rejected"
	RestockStatusCompleted = "completed"
)

// RestockRequest es el objeto de workflow de una reposición de stock.
// Completar la solicitud es el único camino por el que el stock aumenta
// (fuera del ajuste manual).
type RestockRequest struct {
	ID           string
	MedicationID string
	RequesterID  string
	Quantity     int64 // siempre positivo
	Status       string
	ApproverID   *string
	ApprovedAt   *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsTerminal indica si la solicitud ya no admite transiciones.
func (r *RestockRequest) IsTerminal() bool {
	return r.Status == RestockStatusRejected || r.Status == RestockStatusCompleted
}
