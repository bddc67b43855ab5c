package reports

import (
	"context"
	"time"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// LedgerReportData datos ya armados para el PDF del libro de sustancias controladas.
type LedgerReportData struct {
	From        time.Time
	To          time.Time
	GeneratedAt time.Time
	Rows        []LedgerReportRow
}

// LedgerReportRow una fila del reporte: entrada del libro + nombre del medicamento.
type LedgerReportRow struct {
	Date           time.Time
	MedicationName string
	Unit           string
	Action         string
	Delta          int64
	Before         int64
	After          int64
	ActorID        string
	Reason         string
}

// LedgerPDFGenerator puerto de generación del PDF (implementado en infrastructure/pdf).
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, data *LedgerReportData) ([]byte, error)
}

// LedgerReportUseCase arma el reporte auditable del libro de stock para
// sustancias controladas en un rango de fechas y delega el PDF al generador.
type LedgerReportUseCase struct {
	medRepo repository.MedicationRepository
	logRepo repository.StockLogRepository
	pdfGen  LedgerPDFGenerator
}

// NewLedgerReportUseCase construye el caso de uso del reporte.
func NewLedgerReportUseCase(
	medRepo repository.MedicationRepository,
	logRepo repository.StockLogRepository,
	pdfGen LedgerPDFGenerator,
) *LedgerReportUseCase {
	return &LedgerReportUseCase{medRepo: medRepo, logRepo: logRepo, pdfGen: pdfGen}
}

// GenerateControlledLedger genera el PDF con todas las entradas del libro de
// medicamentos controlados entre from y to (inclusive), ordenadas por fecha.
func (uc *LedgerReportUseCase) GenerateControlledLedger(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	controlled, err := uc.medRepo.ListControlled()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Medication, len(controlled))
	for _, m := range controlled {
		byID[m.ID] = m
	}

	entries, err := uc.logRepo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]LedgerReportRow, 0, len(entries))
	for _, e := range entries {
		med, ok := byID[e.MedicationID]
		if !ok {
			continue // solo controlados en este reporte
		}
		rows = append(rows, LedgerReportRow{
			Date:           e.CreatedAt,
			MedicationName: med.Name,
			Unit:           med.Unit,
			Action:         e.Action,
			Delta:          e.Delta,
			Before:         e.Before,
			After:          e.After,
			ActorID:        e.ActorID,
			Reason:         e.Reason,
		})
	}

	data := &LedgerReportData{
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
		Rows:        rows,
	}
	return uc.pdfGen.GenerateLedgerPDF(ctx, data)
}
