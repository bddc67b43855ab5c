package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// AdjustStockUseCase aplica correcciones manuales de stock (quinta vía de
// entrada, independiente del uso clínico y de la reposición). El delta lleva
// signo; un resultado negativo se rechaza sin efectos.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustResult resultado de un ajuste manual.
type AdjustResult struct {
	MedicationID string
	Name         string
	Delta        int64
	NewStock     int64
}

// Adjust aplica el delta con la fila bloqueada, registra la entrada
// ADJUSTMENT y, si el ajuste decrementa y deja el stock bajo el mínimo,
// genera la notificación de stock bajo.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, actorID, medicationID string, delta int64, reason string) (*AdjustResult, error) {
	if actorID == "" || medicationID == "" || delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		_ repository.UsageHistoryRepository,
		logRepo repository.StockLogRepository,
		notifRepo repository.NotificationRepository,
		_ repository.RestockRequestRepository,
	) error {
		med, err := medRepo.GetForUpdate(medicationID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		newStock := med.Stock + delta
		if newStock < 0 {
			return domain.ErrInvalidInput
		}
		if err := medRepo.UpdateStock(med.ID, newStock); err != nil {
			return err
		}

		now := time.Now()
		if reason == "" {
			reason = "ajuste manual"
		}
		entry := &entity.StockLogEntry{
			ID:           uuid.New().String(),
			MedicationID: med.ID,
			Action:       entity.StockActionAdjustment,
			Delta:        delta,
			Before:       med.Stock,
			After:        newStock,
			Reason:       reason,
			ActorID:      actorID,
			CreatedAt:    now,
		}
		if err := logRepo.Append(entry); err != nil {
			return err
		}

		if delta < 0 {
			if err := notifyIfBelowMinimum(notifRepo, med, newStock, now); err != nil {
				return err
			}
		}

		result = &AdjustResult{
			MedicationID: med.ID,
			Name:         med.Name,
			Delta:        delta,
			NewStock:     newStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
