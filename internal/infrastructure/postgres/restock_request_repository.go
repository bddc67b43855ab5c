package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

var _ repository.RestockRequestRepository = (*RestockRequestRepo)(nil)

const restockColumns = `id, medication_id, requester_id, quantity, status, approver_id, approved_at, completed_at, created_at, updated_at`

// RestockRequestRepo implementación del puerto de solicitudes de reposición (usable con pool o tx).
type RestockRequestRepo struct {
	q Querier
}

// NewRestockRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestockRequestRepository(q Querier) *RestockRequestRepo {
	return &RestockRequestRepo{q: q}
}

// Create persiste una solicitud nueva (estado pending).
func (r *RestockRequestRepo) Create(req *entity.RestockRequest) error {
	query := `
		INSERT INTO restock_requests (` + restockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.MedicationID, req.RequesterID, req.Quantity, req.Status,
		req.ApproverID, req.ApprovedAt, req.CompletedAt, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restock request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID; (nil, nil) si no existe.
func (r *RestockRequestRepo) GetByID(id string) (*entity.RestockRequest, error) {
	query := `SELECT ` + restockColumns + ` FROM restock_requests WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene la solicitud y bloquea la fila (SELECT FOR UPDATE),
// para que la verificación de estado y la transición sean una unidad.
func (r *RestockRequestRepo) GetForUpdate(id string) (*entity.RestockRequest, error) {
	query := `SELECT ` + restockColumns + ` FROM restock_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// UpdateStatus registra approved/rejected con aprobador y timestamp.
func (r *RestockRequestRepo) UpdateStatus(id, status, approverID string, at time.Time) error {
	query := `
		UPDATE restock_requests
		SET status = $2, approver_id = $3, approved_at = $4, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, approverID, at)
	if err != nil {
		return fmt.Errorf("update restock status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkCompleted marca la solicitud como completed con timestamp de completado.
func (r *RestockRequestRepo) MarkCompleted(id string, at time.Time) error {
	query := `
		UPDATE restock_requests
		SET status = $2, completed_at = $3, updated_at = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, entity.RestockStatusCompleted, at)
	if err != nil {
		return fmt.Errorf("mark restock completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByStatus lista solicitudes por estado, más antiguas primero (orden de cola).
func (r *RestockRequestRepo) ListByStatus(status string, limit, offset int) ([]*entity.RestockRequest, error) {
	query := `
		SELECT ` + restockColumns + `
		FROM restock_requests
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restock requests: %w", err)
	}
	defer rows.Close()

	var reqs []*entity.RestockRequest
	for rows.Next() {
		var req entity.RestockRequest
		if err := rows.Scan(
			&req.ID, &req.MedicationID, &req.RequesterID, &req.Quantity, &req.Status,
			&req.ApproverID, &req.ApprovedAt, &req.CompletedAt, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restock request: %w", err)
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}

// Delete elimina la solicitud en cualquier estado (vía de escape administrativa).
func (r *RestockRequestRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM restock_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restock request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RestockRequestRepo) scanOne(query string, args ...any) (*entity.RestockRequest, error) {
	var req entity.RestockRequest
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&req.ID, &req.MedicationID, &req.RequesterID, &req.Quantity, &req.Status,
		&req.ApproverID, &req.ApprovedAt, &req.CompletedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restock request: %w", err)
	}
	return &req, nil
}
