package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: la tabla es append-only.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Append persiste una entrada del libro. Nunca actualiza ni borra.
func (r *StockLogRepo) Append(entry *entity.StockLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_log (id, medication_id, action, delta, before_stock, after_stock, reason, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.MedicationID, entry.Action, entry.Delta,
		entry.Before, entry.After, entry.Reason, entry.ActorID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append stock log: %w", err)
	}
	return nil
}

// ListByMedication lista las entradas de un medicamento, más recientes primero.
func (r *StockLogRepo) ListByMedication(medicationID string, limit, offset int) ([]*entity.StockLogEntry, error) {
	query := `
		SELECT id, medication_id, action, delta, before_stock, after_stock, reason, actor_id, created_at
		FROM stock_log
		WHERE medication_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.scanMany(query, medicationID, limit, offset)
}

// ListBetween lista todas las entradas del rango [from, to], ascendente por fecha.
func (r *StockLogRepo) ListBetween(from, to time.Time) ([]*entity.StockLogEntry, error) {
	query := `
		SELECT id, medication_id, action, delta, before_stock, after_stock, reason, actor_id, created_at
		FROM stock_log
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC`
	return r.scanMany(query, from, to)
}

func (r *StockLogRepo) scanMany(query string, args ...any) ([]*entity.StockLogEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock log: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockLogEntry
	for rows.Next() {
		var e entity.StockLogEntry
		if err := rows.Scan(
			&e.ID, &e.MedicationID, &e.Action, &e.Delta,
			&e.Before, &e.After, &e.Reason, &e.ActorID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock log entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
