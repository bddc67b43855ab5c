package repository

import (
	"time"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
)

// StockLogRepository define el puerto del libro de stock (append-only).
// No existen Update ni Delete: las entradas son inmutables.
type StockLogRepository interface {
	Append(entry *entity.StockLogEntry) error
	ListByMedication(medicationID string, limit, offset int) ([]*entity.StockLogEntry, error)
	ListBetween(from, to time.Time) ([]*entity.StockLogEntry, error)
}
