package entity

import "time"

// Tipo de medicamento registrado en el historial de uso.
const (
	MedicationTypeGeneral    = "GENERAL"
	MedicationTypeControlled = "CONTROLLED"
)

// UsageHistoryRecord registra una administración de medicamento a un paciente
// durante una visita clínica. Se crea atómicamente junto con el decremento de
// stock que justifica; nunca se muta después de creado.
type UsageHistoryRecord struct {
	ID                string
	MedicationID      string
	VisitID           *string // visita/turno clínico, opcional
	ActorID           string  // veterinario que prescribe
	PatientID         *string // mascota, opcional
	Quantity          int64
	Dosage            string
	Duration          string
	PrescriptionNotes string
	Notes             string
	MedicationType    string // GENERAL | CONTROLLED
	CreatedAt         time.Time
}
