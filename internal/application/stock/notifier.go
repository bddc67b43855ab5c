package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// notifyIfBelowMinimum inserta una notificación LOW_STOCK si el stock resultante
// quedó por debajo del mínimo. Se llama dentro de la transacción del decremento,
// después de la entrada de auditoría. No deduplica: cada decremento que deja el
// stock bajo el mínimo genera una fila nueva, una por incidente.
func notifyIfBelowMinimum(
	notifRepo repository.NotificationRepository,
	med *entity.Medication,
	newStock int64,
	now time.Time,
) error {
	if newStock >= med.MinStock {
		return nil
	}
	medID := med.ID
	n := &entity.AdminNotification{
		ID:           uuid.New().String(),
		Type:         entity.NotificationLowStock,
		MedicationID: &medID,
		Message: fmt.Sprintf("Stock bajo para %s: quedan %d %s (mínimo %d)",
			med.Name, newStock, med.Unit, med.MinStock),
		Read:      false,
		CreatedAt: now,
	}
	return notifRepo.Create(n)
}
