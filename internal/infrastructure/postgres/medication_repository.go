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

var _ repository.MedicationRepository = (*MedicationRepo)(nil)

const medicationColumns = `id, name, category, controlled, stock, min_stock, unit, price, description, created_at, updated_at`

// MedicationRepo implementación del puerto MedicationRepository sobre PostgreSQL (usable con pool o tx).
type MedicationRepo struct {
	q Querier
}

// NewMedicationRepository construye el adaptador de medicamentos. Pasar pool o tx (Querier).
func NewMedicationRepository(q Querier) *MedicationRepo {
	return &MedicationRepo{q: q}
}

// Create persiste un medicamento nuevo. Nombre único: ErrDuplicate si ya existe.
func (r *MedicationRepo) Create(m *entity.Medication) error {
	query := `
		INSERT INTO medications (id, name, category, controlled, stock, min_stock, unit, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.Controlled, m.Stock, m.MinStock,
		m.Unit, m.Price, m.Description, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID; (nil, nil) si no existe.
func (r *MedicationRepo) GetByID(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el medicamento y bloquea la fila para update (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: es lo que serializa los
// decrementos concurrentes sobre el mismo stock.
func (r *MedicationRepo) GetForUpdate(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza datos de catálogo. No toca la columna stock.
func (r *MedicationRepo) Update(m *entity.Medication) error {
	query := `
		UPDATE medications
		SET name = $2, category = $3, controlled = $4, min_stock = $5, unit = $6,
		    price = $7, description = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.Controlled, m.MinStock, m.Unit,
		m.Price, m.Description, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el nuevo valor de stock. Único escritor de la columna;
// lo invocan solo los casos de uso transaccionales con la fila ya bloqueada.
func (r *MedicationRepo) UpdateStock(id string, newStock int64) error {
	query := `UPDATE medications SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, newStock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo paginado por nombre.
func (r *MedicationRepo) List(limit, offset int) ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications ORDER BY name LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListByCategoryPattern busca por substring case-insensitive en la categoría (ILIKE).
func (r *MedicationRepo) ListByCategoryPattern(pattern string) ([]*entity.Medication, error) {
	query := `
		SELECT ` + medicationColumns + `
		FROM medications
		WHERE category ILIKE '%' || $1 || '%'
		ORDER BY name`
	return r.scanMany(query, pattern)
}

// ListControlled lista los medicamentos marcados como sustancia controlada.
func (r *MedicationRepo) ListControlled() ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE controlled ORDER BY name`
	return r.scanMany(query)
}

// ListBelowMinimum devuelve medicamentos con stock <= min_stock, ascendente por stock.
func (r *MedicationRepo) ListBelowMinimum() ([]*entity.Medication, error) {
	query := `
		SELECT ` + medicationColumns + `
		FROM medications
		WHERE stock <= min_stock
		ORDER BY stock ASC`
	return r.scanMany(query)
}

func (r *MedicationRepo) scanOne(query string, args ...any) (*entity.Medication, error) {
	var m entity.Medication
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.Name, &m.Category, &m.Controlled, &m.Stock, &m.MinStock,
		&m.Unit, &m.Price, &m.Description, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return &m, nil
}

func (r *MedicationRepo) scanMany(query string, args ...any) ([]*entity.Medication, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var meds []*entity.Medication
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Category, &m.Controlled, &m.Stock, &m.MinStock,
			&m.Unit, &m.Price, &m.Description, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		meds = append(meds, &m)
	}
	return meds, rows.Err()
}
