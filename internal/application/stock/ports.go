package stock

import (
	"context"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el libro de stock: todos los efectos de una
// llamada (decremento/incremento, historial, auditoría, notificación)
// se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicationRepository,
		usageRepo repository.UsageHistoryRepository,
		logRepo repository.StockLogRepository,
		notifRepo repository.NotificationRepository,
		restockRepo repository.RestockRequestRepository,
	) error) error
}
