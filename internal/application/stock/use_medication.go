package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// UseMedicationUseCase es el único camino autorizado para decrementar stock
// por administración de medicamentos. Procesa uno o varios medicamentos de
// una visita clínica dentro de UNA transacción con bloqueo de fila
// (SELECT FOR UPDATE): si cualquier ítem falla, se revierten todos los
// efectos ya aplicados en esa llamada, incluidos los ítems anteriores.
type UseMedicationUseCase struct {
	txRunner TxRunner
}

// NewUseMedicationUseCase construye el caso de uso.
func NewUseMedicationUseCase(txRunner TxRunner) *UseMedicationUseCase {
	return &UseMedicationUseCase{txRunner: txRunner}
}

// UseMedicationInput entrada para una administración (uno o varios ítems).
type UseMedicationInput struct {
	ActorID   string // veterinario autenticado (la autenticación es del middleware)
	PatientID *string
	VisitID   *string
	Items     []dto.UseMedicationItem
}

// UseMedications valida y aplica la administración de todos los ítems.
// Orden fijo de efectos por ítem: validar → decrementar → historial →
// auditoría → notificación de stock bajo. Devuelve el resultado por ítem
// solo si la transacción completa confirmó.
func (uc *UseMedicationUseCase) UseMedications(ctx context.Context, input UseMedicationInput) ([]dto.UseMedicationResult, error) {
	if input.ActorID == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range input.Items {
		if it.MedicationID == "" || it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	results := make([]dto.UseMedicationResult, 0, len(input.Items))

	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		usageRepo repository.UsageHistoryRepository,
		logRepo repository.StockLogRepository,
		notifRepo repository.NotificationRepository,
		_ repository.RestockRequestRepository,
	) error {
		for _, it := range input.Items {
			res, err := applyUsage(medRepo, usageRepo, logRepo, notifRepo, input, it, now)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UseMedication variante de un solo medicamento (llamada explícita "usar medicamento").
func (uc *UseMedicationUseCase) UseMedication(ctx context.Context, actorID, medicationID string, quantity int64, notes string) (*dto.UseMedicationResult, error) {
	results, err := uc.UseMedications(ctx, UseMedicationInput{
		ActorID: actorID,
		Items: []dto.UseMedicationItem{{
			MedicationID: medicationID,
			Quantity:     quantity,
			Notes:        notes,
		}},
	})
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// applyUsage aplica un ítem dentro de la transacción: bloquea la fila del
// medicamento, verifica stock disponible, decrementa y deja historial,
// entrada de auditoría USAGE y notificación si corresponde.
func applyUsage(
	medRepo repository.MedicationRepository,
	usageRepo repository.UsageHistoryRepository,
	logRepo repository.StockLogRepository,
	notifRepo repository.NotificationRepository,
	input UseMedicationInput,
	it dto.UseMedicationItem,
	now time.Time,
) (*dto.UseMedicationResult, error) {
	med, err := medRepo.GetForUpdate(it.MedicationID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	if med.Stock < it.Quantity {
		return nil, &domain.InsufficientStockError{
			MedicationID: med.ID,
			Name:         med.Name,
			Available:    med.Stock,
			Requested:    it.Quantity,
		}
	}

	newStock := med.Stock - it.Quantity
	if err := medRepo.UpdateStock(med.ID, newStock); err != nil {
		return nil, err
	}

	medType := entity.MedicationTypeGeneral
	if med.Controlled {
		medType = entity.MedicationTypeControlled
	}
	record := &entity.UsageHistoryRecord{
		ID:                uuid.New().String(),
		MedicationID:      med.ID,
		VisitID:           input.VisitID,
		ActorID:           input.ActorID,
		PatientID:         input.PatientID,
		Quantity:          it.Quantity,
		Dosage:            it.Dosage,
		Duration:          it.Duration,
		PrescriptionNotes: it.PrescriptionNotes,
		Notes:             it.Notes,
		MedicationType:    medType,
		CreatedAt:         now,
	}
	if err := usageRepo.Create(record); err != nil {
		return nil, err
	}

	entry := &entity.StockLogEntry{
		ID:           uuid.New().String(),
		MedicationID: med.ID,
		Action:       entity.StockActionUsage,
		Delta:        -it.Quantity,
		Before:       med.Stock,
		After:        newStock,
		Reason:       "administración a paciente",
		ActorID:      input.ActorID,
		CreatedAt:    now,
	}
	if err := logRepo.Append(entry); err != nil {
		return nil, err
	}

	if err := notifyIfBelowMinimum(notifRepo, med, newStock, now); err != nil {
		return nil, err
	}

	return &dto.UseMedicationResult{
		MedicationID:   med.ID,
		Name:           med.Name,
		QuantityUsed:   it.Quantity,
		RemainingStock: newStock,
	}, nil
}
