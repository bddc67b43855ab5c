package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicationRequest body para POST /api/medications.
type CreateMedicationRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required,max=200"`
	Controlled  bool            `json:"controlled"`
	Stock       int64           `json:"stock" validate:"min=0"`
	MinStock    *int64          `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	Unit        string          `json:"unit" validate:"required,max=50"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// UpdateMedicationRequest body para PUT /api/medications/:id.
// El stock no se actualiza por aquí: solo por uso, reposición o ajuste.
type UpdateMedicationRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Controlled  *bool            `json:"controlled,omitempty"`
	MinStock    *int64           `json:"min_stock,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// MedicationResponse salida de un medicamento.
type MedicationResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Controlled  bool            `json:"controlled"`
	Stock       int64           `json:"stock"`
	MinStock    int64           `json:"min_stock"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
