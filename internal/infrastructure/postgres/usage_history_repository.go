package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

var _ repository.UsageHistoryRepository = (*UsageHistoryRepo)(nil)

const usageColumns = `id, medication_id, visit_id, actor_id, patient_id, quantity, dosage, duration, prescription_notes, notes, medication_type, created_at`

// UsageHistoryRepo implementación del historial de administraciones sobre PostgreSQL (usable con pool o tx).
type UsageHistoryRepo struct {
	q Querier
}

// NewUsageHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsageHistoryRepository(q Querier) *UsageHistoryRepo {
	return &UsageHistoryRepo{q: q}
}

// Create persiste un registro de administración. Los registros nunca se mutan.
func (r *UsageHistoryRepo) Create(record *entity.UsageHistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usage_history (` + usageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.MedicationID, record.VisitID, record.ActorID, record.PatientID,
		record.Quantity, record.Dosage, record.Duration, record.PrescriptionNotes,
		record.Notes, record.MedicationType, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create usage record: %w", err)
	}
	return nil
}

// ListByMedication lista administraciones de un medicamento, más recientes primero.
func (r *UsageHistoryRepo) ListByMedication(medicationID string, limit, offset int) ([]*entity.UsageHistoryRecord, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM usage_history
		WHERE medication_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.scanMany(query, medicationID, limit, offset)
}

// ListByPatient lista administraciones a una mascota, más recientes primero.
func (r *UsageHistoryRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.UsageHistoryRecord, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM usage_history
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.scanMany(query, patientID, limit, offset)
}

func (r *UsageHistoryRepo) scanMany(query string, args ...any) ([]*entity.UsageHistoryRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usage history: %w", err)
	}
	defer rows.Close()

	var records []*entity.UsageHistoryRecord
	for rows.Next() {
		var rec entity.UsageHistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.MedicationID, &rec.VisitID, &rec.ActorID, &rec.PatientID,
			&rec.Quantity, &rec.Dosage, &rec.Duration, &rec.PrescriptionNotes,
			&rec.Notes, &rec.MedicationType, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usage record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
