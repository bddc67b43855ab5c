package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock umbral mínimo por defecto al crear un medicamento.
const DefaultMinStock int64 = 10

// Medication representa un medicamento o insumo con stock finito.
// Stock solo se muta por los caminos controlados (uso, reposición completada,
// ajuste manual); el invariante Stock >= 0 lo hacen cumplir esos casos de uso.
// Controlled reemplaza la convención del catálogo original de marcar sustancias
// controladas por substring en la categoría; la categoría libre se conserva
// para búsquedas.
type Medication struct {
	ID          string
	Name        string // único en el catálogo
	Category    string // texto libre: "antibiótico", "analgésico controlado", ...
	Controlled  bool
	Stock       int64
	MinStock    int64
	Unit        string          // "ml", "comprimido", "ampolla", ...
	Price       decimal.Decimal // precio de venta en el petshop
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
