package medication

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// UseCase gestiona el catálogo de medicamentos. El stock NO se muta por aquí:
// Create fija el stock inicial y a partir de ahí solo lo tocan los casos de
// uso transaccionales (uso, reposición, ajuste).
type UseCase struct {
	medRepo repository.MedicationRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(medRepo repository.MedicationRepository) *UseCase {
	return &UseCase{medRepo: medRepo}
}

// Create da de alta un medicamento. Nombre único en el catálogo (ErrDuplicate si ya existe).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	if in.Name == "" || in.Unit == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}
	now := time.Now()
	med := &entity.Medication{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Controlled:  in.Controlled,
		Stock:       in.Stock,
		MinStock:    minStock,
		Unit:        in.Unit,
		Price:       in.Price,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.medRepo.Create(med); err != nil {
		return nil, err
	}
	return toResponse(med), nil
}

// GetByID obtiene un medicamento; ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.MedicationResponse, error) {
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(med), nil
}

// GetStock devuelve el stock actual; ErrNotFound si el medicamento no existe.
func (uc *UseCase) GetStock(ctx context.Context, id string) (int64, error) {
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if med == nil {
		return 0, domain.ErrNotFound
	}
	return med.Stock, nil
}

// Update modifica datos de catálogo (nunca el stock).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		med.Name = *in.Name
	}
	if in.Category != nil {
		med.Category = *in.Category
	}
	if in.Controlled != nil {
		med.Controlled = *in.Controlled
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		med.MinStock = *in.MinStock
	}
	if in.Unit != nil {
		med.Unit = *in.Unit
	}
	if in.Price != nil {
		med.Price = *in.Price
	}
	if in.Description != nil {
		med.Description = *in.Description
	}
	med.UpdatedAt = time.Now()
	if err := uc.medRepo.Update(med); err != nil {
		return nil, err
	}
	return toResponse(med), nil
}

// List lista el catálogo paginado.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]dto.MedicationResponse, error) {
	meds, err := uc.medRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toResponses(meds), nil
}

// ListByCategoryPattern busca por substring case-insensitive en la categoría.
func (uc *UseCase) ListByCategoryPattern(ctx context.Context, pattern string) ([]dto.MedicationResponse, error) {
	if pattern == "" {
		return nil, domain.ErrInvalidInput
	}
	meds, err := uc.medRepo.ListByCategoryPattern(pattern)
	if err != nil {
		return nil, err
	}
	return toResponses(meds), nil
}

// ListBelowMinimum devuelve los medicamentos con stock en o bajo el mínimo,
// ascendente por stock (los más críticos primero).
func (uc *UseCase) ListBelowMinimum(ctx context.Context) ([]dto.MedicationResponse, error) {
	meds, err := uc.medRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	return toResponses(meds), nil
}

func toResponse(m *entity.Medication) *dto.MedicationResponse {
	return &dto.MedicationResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Controlled:  m.Controlled,
		Stock:       m.Stock,
		MinStock:    m.MinStock,
		Unit:        m.Unit,
		Price:       m.Price,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toResponses(meds []*entity.Medication) []dto.MedicationResponse {
	out := make([]dto.MedicationResponse, 0, len(meds))
	for _, m := range meds {
		out = append(out, *toResponse(m))
	}
	return out
}
