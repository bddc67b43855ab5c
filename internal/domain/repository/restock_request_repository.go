package repository

import (
	"time"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
)

// RestockRequestRepository define el puerto de persistencia de solicitudes de reposición.
// GetByID y GetForUpdate devuelven (nil, nil) si la solicitud no existe.
type RestockRequestRepository interface {
	Create(req *entity.RestockRequest) error
	GetByID(id string) (*entity.RestockRequest, error)
	// GetForUpdate bloquea la fila de la solicitud (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.RestockRequest, error)
	// UpdateStatus registra approved/rejected con aprobador y timestamp.
	UpdateStatus(id, status, approverID string, at time.Time) error
	MarkCompleted(id string, at time.Time) error
	ListByStatus(status string, limit, offset int) ([]*entity.RestockRequest, error)
	Delete(id string) error
}
