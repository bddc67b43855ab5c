package repository

import "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"

// MedicationRepository define el puerto de persistencia del catálogo de medicamentos.
// GetByID y GetForUpdate devuelven (nil, nil) si el medicamento no existe.
// UpdateStock es el único método que toca la columna stock; solo lo invocan
// los casos de uso transaccionales (uso, reposición, ajuste).
type MedicationRepository interface {
	Create(m *entity.Medication) error
	GetByID(id string) (*entity.Medication, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Medication, error)
	Update(m *entity.Medication) error
	UpdateStock(id string, newStock int64) error
	List(limit, offset int) ([]*entity.Medication, error)
	// ListByCategoryPattern busca por substring case-insensitive en la categoría.
	ListByCategoryPattern(pattern string) ([]*entity.Medication, error)
	ListControlled() ([]*entity.Medication, error)
	// ListBelowMinimum devuelve medicamentos con stock <= min_stock, ascendente por stock.
	ListBelowMinimum() ([]*entity.Medication, error)
}
