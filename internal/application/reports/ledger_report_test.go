package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/reports"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
)

// medRepoStub solo implementa lo que el reporte necesita.
type medRepoStub struct {
	controlled []*entity.Medication
}

func (s *medRepoStub) Create(*entity.Medication) error { return nil }

func (s *medRepoStub) GetByID(string) (*entity.Medication, error) { return nil, nil }

func (s *medRepoStub) GetForUpdate(string) (*entity.Medication, error) { return nil, nil }

func (s *medRepoStub) Update(*entity.Medication) error { return nil }

func (s *medRepoStub) UpdateStock(string, int64) error { return nil }

func (s *medRepoStub) List(int, int) ([]*entity.Medication, error) { return nil, nil }

func (s *medRepoStub) ListByCategoryPattern(string) ([]*entity.Medication, error) { return nil, nil }

func (s *medRepoStub) ListControlled() ([]*entity.Medication, error) { return s.controlled, nil }

func (s *medRepoStub) ListBelowMinimum() ([]*entity.Medication, error) { return nil, nil }

type logRepoStub struct {
	entries []*entity.StockLogEntry
}

func (s *logRepoStub) Append(*entity.StockLogEntry) error { return nil }
func (s *logRepoStub) ListByMedication(string, int, int) ([]*entity.StockLogEntry, error) {
	return nil, nil
}
func (s *logRepoStub) ListBetween(from, to time.Time) ([]*entity.StockLogEntry, error) {
	var out []*entity.StockLogEntry
	for _, e := range s.entries {
		if !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// pdfGenStub captura los datos con los que se pidió el PDF.
type pdfGenStub struct {
	captured *reports.LedgerReportData
}

func (g *pdfGenStub) GenerateLedgerPDF(_ context.Context, data *reports.LedgerReportData) ([]byte, error) {
	g.captured = data
	return []byte("%PDF-fake"), nil
}

func TestGenerateControlledLedger_SoloControlados(t *testing.T) {
	now := time.Now()
	medRepo := &medRepoStub{controlled: []*entity.Medication{
		{ID: "ctrl-1", Name: "Ketamina", Unit: "ml", Controlled: true},
	}}
	logRepo := &logRepoStub{entries: []*entity.StockLogEntry{
		{MedicationID: "ctrl-1", Action: entity.StockActionUsage, Delta: -2, Before: 10, After: 8, ActorID: "vet-1", CreatedAt: now.Add(-time.Hour)},
		{MedicationID: "general-1", Action: entity.StockActionUsage, Delta: -5, Before: 50, After: 45, ActorID: "vet-1", CreatedAt: now.Add(-time.Hour)},
		{MedicationID: "ctrl-1", Action: entity.StockActionRestock, Delta: 20, Before: 8, After: 28, ActorID: "admin-1", CreatedAt: now.Add(-48 * time.Hour)},
	}}
	gen := &pdfGenStub{}
	uc := reports.NewLedgerReportUseCase(medRepo, logRepo, gen)

	pdf, err := uc.GenerateControlledLedger(context.Background(), now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, gen.captured)
	require.Len(t, gen.captured.Rows, 1,
		"solo los movimientos de controlados dentro del rango entran al reporte")
	row := gen.captured.Rows[0]
	assert.Equal(t, "Ketamina", row.MedicationName)
	assert.Equal(t, entity.StockActionUsage, row.Action)
	assert.Equal(t, int64(-2), row.Delta)
}

func TestGenerateControlledLedger_RangoInvalido(t *testing.T) {
	uc := reports.NewLedgerReportUseCase(&medRepoStub{}, &logRepoStub{}, &pdfGenStub{})

	now := time.Now()
	_, err := uc.GenerateControlledLedger(context.Background(), now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "to anterior a from se rechaza")
}

func TestGenerateControlledLedger_SinMovimientos(t *testing.T) {
	gen := &pdfGenStub{}
	uc := reports.NewLedgerReportUseCase(&medRepoStub{}, &logRepoStub{}, gen)

	now := time.Now()
	_, err := uc.GenerateControlledLedger(context.Background(), now.Add(-time.Hour), now)
	require.NoError(t, err)
	require.NotNil(t, gen.captured)
	assert.Empty(t, gen.captured.Rows, "un rango sin movimientos genera un reporte vacío, no un error")
}
