package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// RestockUseCase gobierna el workflow de reposición:
// pending → approved | rejected ; approved → completed.
// Completar una solicitud es el único lugar donde el stock aumenta por
// reposición; el incremento, la entrada RESTOCK del libro y el cambio de
// estado se confirman en una sola transacción.
type RestockUseCase struct {
	txRunner TxRunner
	medRepo  repository.MedicationRepository
	reqRepo  repository.RestockRequestRepository
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(
	txRunner TxRunner,
	medRepo repository.MedicationRepository,
	reqRepo repository.RestockRequestRepository,
) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner, medRepo: medRepo, reqRepo: reqRepo}
}

// Request crea una solicitud en estado pending. No cambia stock.
func (uc *RestockUseCase) Request(ctx context.Context, medicationID string, quantity int64, requesterID string) (*entity.RestockRequest, error) {
	if medicationID == "" || requesterID == "" || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.medRepo.GetByID(medicationID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	req := &entity.RestockRequest{
		ID:           uuid.New().String(),
		MedicationID: medicationID,
		RequesterID:  requesterID,
		Quantity:     quantity,
		Status:       entity.RestockStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.reqRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Approve pasa la solicitud de pending a approved y registra el aprobador.
// Desde cualquier otro estado devuelve ErrInvalidState.
func (uc *RestockUseCase) Approve(ctx context.Context, requestID, approverID string) (*entity.RestockRequest, error) {
	return uc.transition(ctx, requestID, approverID, entity.RestockStatusApproved)
}

// Reject pasa la solicitud de pending a rejected (terminal) y registra el aprobador.
func (uc *RestockUseCase) Reject(ctx context.Context, requestID, approverID string) (*entity.RestockRequest, error) {
	return uc.transition(ctx, requestID, approverID, entity.RestockStatusRejected)
}

// transition aplica approve/reject con la fila de la solicitud bloqueada, para
// que dos aprobaciones concurrentes no pasen ambas la verificación de estado.
func (uc *RestockUseCase) transition(ctx context.Context, requestID, approverID, target string) (*entity.RestockRequest, error) {
	if requestID == "" || approverID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.RestockRequest
	err := uc.txRunner.Run(ctx, func(
		_ repository.MedicationRepository,
		_ repository.UsageHistoryRepository,
		_ repository.StockLogRepository,
		_ repository.NotificationRepository,
		reqRepo repository.RestockRequestRepository,
	) error {
		req, err := reqRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.RestockStatusPending {
			return domain.ErrInvalidState
		}
		now := time.Now()
		if err := reqRepo.UpdateStatus(requestID, target, approverID, now); err != nil {
			return err
		}
		req.Status = target
		req.ApproverID = &approverID
		req.ApprovedAt = &now
		req.UpdatedAt = now
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete pasa la solicitud de approved a completed: atómicamente incrementa
// el stock del medicamento en la cantidad solicitada, agrega la entrada
// RESTOCK al libro y marca la solicitud como completada. Desde cualquier
// estado distinto de approved devuelve ErrInvalidState y no toca stock.
func (uc *RestockUseCase) Complete(ctx context.Context, requestID, approverID string) (*entity.RestockRequest, error) {
	if requestID == "" || approverID == "" {
		return nil, domain.ErrInvalidInput
	}
	var completed *entity.RestockRequest
	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		_ repository.UsageHistoryRepository,
		logRepo repository.StockLogRepository,
		_ repository.NotificationRepository,
		reqRepo repository.RestockRequestRepository,
	) error {
		req, err := reqRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.RestockStatusApproved {
			return domain.ErrInvalidState
		}

		med, err := medRepo.GetForUpdate(req.MedicationID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		newStock := med.Stock + req.Quantity
		if err := medRepo.UpdateStock(med.ID, newStock); err != nil {
			return err
		}
		entry := &entity.StockLogEntry{
			ID:           uuid.New().String(),
			MedicationID: med.ID,
			Action:       entity.StockActionRestock,
			Delta:        req.Quantity,
			Before:       med.Stock,
			After:        newStock,
			Reason:       "reposición completada",
			ActorID:      approverID,
			CreatedAt:    now,
		}
		if err := logRepo.Append(entry); err != nil {
			return err
		}
		if err := reqRepo.MarkCompleted(requestID, now); err != nil {
			return err
		}
		req.Status = entity.RestockStatusCompleted
		req.CompletedAt = &now
		req.UpdatedAt = now
		completed = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// Delete elimina la solicitud en cualquier estado. Es una vía de escape fuera
// de la máquina de estados (solo admins): borrar una solicitud no terminal
// descarta su rastro; el handler lo registra como warning. Devuelve la
// solicitud tal como estaba antes de borrarla.
func (uc *RestockUseCase) Delete(ctx context.Context, requestID string) (*entity.RestockRequest, error) {
	if requestID == "" {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.reqRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.reqRepo.Delete(requestID); err != nil {
		return nil, err
	}
	return req, nil
}

// ListByStatus lista solicitudes por estado (cola de pendientes para aprobadores).
func (uc *RestockUseCase) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.RestockRequest, error) {
	switch status {
	case entity.RestockStatusPending, entity.RestockStatusApproved,
		entity.RestockStatusRejected, entity.RestockStatusCompleted:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.reqRepo.ListByStatus(status, limit, offset)
}
