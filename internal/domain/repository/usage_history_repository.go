package repository

import "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"

// UsageHistoryRepository define el puerto del historial de administraciones.
// Los registros se crean junto con el decremento de stock y nunca se mutan.
type UsageHistoryRepository interface {
	Create(record *entity.UsageHistoryRecord) error
	ListByMedication(medicationID string, limit, offset int) ([]*entity.UsageHistoryRecord, error)
	ListByPatient(patientID string, limit, offset int) ([]*entity.UsageHistoryRecord, error)
}
