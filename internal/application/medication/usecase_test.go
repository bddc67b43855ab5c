package medication_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/dto"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/medication"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
)

// medRepoFake repositorio de catálogo en memoria para estos tests.
type medRepoFake struct {
	meds map[string]*entity.Medication
}

func newMedRepoFake() *medRepoFake {
	return &medRepoFake{meds: make(map[string]*entity.Medication)}
}

func (r *medRepoFake) Create(m *entity.Medication) error {
	for _, existing := range r.meds {
		if existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	c := *m
	r.meds[m.ID] = &c
	return nil
}

func (r *medRepoFake) GetByID(id string) (*entity.Medication, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (r *medRepoFake) GetForUpdate(id string) (*entity.Medication, error) { return r.GetByID(id) }

func (r *medRepoFake) Update(m *entity.Medication) error {
	if _, ok := r.meds[m.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *m
	r.meds[m.ID] = &c
	return nil
}

func (r *medRepoFake) UpdateStock(id string, newStock int64) error {
	m, ok := r.meds[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Stock = newStock
	return nil
}

func (r *medRepoFake) List(limit, offset int) ([]*entity.Medication, error) {
	return r.filter(func(*entity.Medication) bool { return true }), nil
}

func (r *medRepoFake) ListByCategoryPattern(pattern string) ([]*entity.Medication, error) {
	p := strings.ToLower(pattern)
	return r.filter(func(m *entity.Medication) bool {
		return strings.Contains(strings.ToLower(m.Category), p)
	}), nil
}

func (r *medRepoFake) ListControlled() ([]*entity.Medication, error) {
	return r.filter(func(m *entity.Medication) bool { return m.Controlled }), nil
}

func (r *medRepoFake) ListBelowMinimum() ([]*entity.Medication, error) {
	out := r.filter(func(m *entity.Medication) bool { return m.Stock <= m.MinStock })
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (r *medRepoFake) filter(keep func(*entity.Medication) bool) []*entity.Medication {
	var out []*entity.Medication
	for _, m := range r.meds {
		if keep(m) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func newFixture() (*medRepoFake, *medication.UseCase) {
	repo := newMedRepoFake()
	return repo, medication.NewUseCase(repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AltaConMinimoPorDefecto(t *testing.T) {
	_, uc := newFixture()

	med, err := uc.Create(context.Background(), dto.CreateMedicationRequest{
		Name:     "Amoxicilina 250mg",
		Category: "antibiótico",
		Stock:    100,
		Unit:     "comprimido",
		Price:    decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, med.ID)
	assert.Equal(t, entity.DefaultMinStock, med.MinStock,
		"sin min_stock explícito debe aplicarse el mínimo por defecto")
	assert.False(t, med.Controlled)
}

func TestCreate_NombreDuplicado(t *testing.T) {
	_, uc := newFixture()

	in := dto.CreateMedicationRequest{Name: "Amoxicilina", Stock: 10, Unit: "ml"}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el nombre es único en el catálogo")
}

func TestCreate_EntradaInvalida(t *testing.T) {
	_, uc := newFixture()

	_, err := uc.Create(context.Background(), dto.CreateMedicationRequest{Name: "", Unit: "ml"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateMedicationRequest{Name: "X", Unit: "ml", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el stock inicial no puede ser negativo")

	negMin := int64(-5)
	_, err = uc.Create(context.Background(), dto.CreateMedicationRequest{Name: "X", Unit: "ml", MinStock: &negMin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NuncaTocaStock(t *testing.T) {
	repo, uc := newFixture()

	med, err := uc.Create(context.Background(), dto.CreateMedicationRequest{
		Name: "Amoxicilina", Category: "antibiótico", Stock: 100, Unit: "ml",
	})
	require.NoError(t, err)

	newName := "Amoxicilina 500mg"
	controlled := true
	updated, err := uc.Update(context.Background(), med.ID, dto.UpdateMedicationRequest{
		Name:       &newName,
		Controlled: &controlled,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.True(t, updated.Controlled)
	assert.Equal(t, int64(100), updated.Stock, "editar el catálogo nunca cambia el stock")
	assert.Equal(t, int64(100), repo.meds[med.ID].Stock)
}

func TestUpdate_Inexistente(t *testing.T) {
	_, uc := newFixture()

	name := "Nueva"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateMedicationRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStock(t *testing.T) {
	_, uc := newFixture()

	med, err := uc.Create(context.Background(), dto.CreateMedicationRequest{
		Name: "Meloxicam", Stock: 42, Unit: "ampolla",
	})
	require.NoError(t, err)

	stock, err := uc.GetStock(context.Background(), med.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stock)

	_, err = uc.GetStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByCategoryPattern_CaseInsensitive(t *testing.T) {
	_, uc := newFixture()

	for _, in := range []dto.CreateMedicationRequest{
		{Name: "Amoxicilina", Category: "Antibiótico", Stock: 10, Unit: "ml"},
		{Name: "Meloxicam", Category: "antiinflamatorio", Stock: 10, Unit: "ml"},
		{Name: "Tramadol", Category: "analgésico controlado", Stock: 10, Unit: "ml"},
	} {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	meds, err := uc.ListByCategoryPattern(context.Background(), "ANTI")
	require.NoError(t, err)
	assert.Len(t, meds, 2, "la búsqueda por categoría no distingue mayúsculas")

	_, err = uc.ListByCategoryPattern(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListBelowMinimum_OrdenadoPorCriticidad(t *testing.T) {
	_, uc := newFixture()

	min5 := int64(5)
	min20 := int64(20)
	for _, in := range []dto.CreateMedicationRequest{
		{Name: "Crítico", Stock: 1, Unit: "ml", MinStock: &min5},
		{Name: "Justo", Stock: 20, Unit: "ml", MinStock: &min20},
		{Name: "Sano", Stock: 500, Unit: "ml", MinStock: &min5},
	} {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	meds, err := uc.ListBelowMinimum(context.Background())
	require.NoError(t, err)
	require.Len(t, meds, 2, "stock <= mínimo incluye al que está justo en el umbral")
	assert.Equal(t, "Crítico", meds[0].Name, "el de menos stock va primero")
	assert.Equal(t, "Justo", meds[1].Name)
}
