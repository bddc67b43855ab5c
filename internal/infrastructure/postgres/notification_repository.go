package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto de notificaciones (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación nueva (sin leer).
func (r *NotificationRepo) Create(n *entity.AdminNotification) error {
	query := `
		INSERT INTO admin_notifications (id, type, medication_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Type, n.MedicationID, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID; (nil, nil) si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.AdminNotification, error) {
	query := `
		SELECT id, type, medication_id, message, read, created_at
		FROM admin_notifications WHERE id = $1`
	var n entity.AdminNotification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Type, &n.MedicationID, &n.Message, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// List lista notificaciones, más recientes primero; onlyUnread filtra las no leídas.
func (r *NotificationRepo) List(onlyUnread bool, limit, offset int) ([]*entity.AdminNotification, error) {
	query := `
		SELECT id, type, medication_id, message, read, created_at
		FROM admin_notifications`
	if onlyUnread {
		query += ` WHERE NOT read`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifs []*entity.AdminNotification
	for rows.Next() {
		var n entity.AdminNotification
		if err := rows.Scan(&n.ID, &n.Type, &n.MedicationID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifs = append(notifs, &n)
	}
	return notifs, rows.Err()
}

// MarkRead marca la notificación como leída. El flag solo va de false a true;
// repetir la operación no cambia nada.
func (r *NotificationRepo) MarkRead(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE admin_notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
