package entity

import "time"

// Tipos de notificación administrativa.
const (
	NotificationLowStock = "LOW_STOCK"
)

// AdminNotification es una alerta derivada, de mejor esfuerzo: este core solo
// escribe filas; la entrega (email, panel) es de otro sistema. Read pasa a
// true exactamente una vez y nunca revierte. No se deduplican alertas
// repetidas: cada decremento que deja el stock bajo el mínimo genera una fila.
type AdminNotification struct {
	ID           string
	Type         string // LOW_STOCK
	MedicationID *string
	Message      string
	Read         bool
	CreatedAt    time.Time
}
