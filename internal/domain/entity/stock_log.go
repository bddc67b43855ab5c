package entity

import "time"

// Acciones válidas para una entrada del libro de stock.
const (
	StockActionRestock    = "RESTOCK"    // delta positivo
	StockActionUsage      = "USAGE"      // delta negativo
	StockActionAdjustment = "ADJUSTMENT" // delta con cualquier signo
)

// StockLogEntry es un registro de auditoría inmutable de un cambio de stock.
// Invariante: After == Before + Delta. Se crea exactamente una vez por
// mutación exitosa, dentro de la misma transacción que la mutación; nunca se
// actualiza ni se borra.
type StockLogEntry struct {
	ID           string
	MedicationID string
	Action       string // RESTOCK, USAGE, ADJUSTMENT
	Delta        int64  // con signo
	Before       int64
	After        int64
	Reason       string
	ActorID      string
	CreatedAt    time.Time
}
