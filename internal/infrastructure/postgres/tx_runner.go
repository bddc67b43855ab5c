package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los SELECT FOR UPDATE de los repos dentro de fn serializan las escrituras
// concurrentes sobre la misma fila de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicationRepository,
	usageRepo repository.UsageHistoryRepository,
	logRepo repository.StockLogRepository,
	notifRepo repository.NotificationRepository,
	restockRepo repository.RestockRequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	medRepo := NewMedicationRepository(tx)
	usageRepo := NewUsageHistoryRepository(tx)
	logRepo := NewStockLogRepository(tx)
	notifRepo := NewNotificationRepository(tx)
	restockRepo := NewRestockRequestRepository(tx)

	if err := fn(medRepo, usageRepo, logRepo, notifRepo, restockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
