// Package pdf implementa la generación del reporte PDF del libro de
// sustancias controladas (auditoría por rango de fechas).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clínica + título del reporte │ Rango de fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Medicamento | Acción | Δ | Antes→Después |  │
//	│         Actor | Motivo                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de movimientos + fecha de generación            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLedgerGenerator implementa reports.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el PDF del libro y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	data *reports.LedgerReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Libro de Sustancias Controladas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y rango de fechas (der).
func headerRow(data *reports.LedgerReportData) core.Row {
	rango := fmt.Sprintf("%s — %s",
		data.From.Format("02/01/2006"), data.To.Format("02/01/2006"))

	return row.New(14).Add(
		col.New(8).Add(
			text.New("Libro de Sustancias Controladas", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro auditable de movimientos de stock", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Período", props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(6).Add(
		header(2, "Fecha"),
		header(3, "Medicamento"),
		header(1, "Acción"),
		header(1, "Δ"),
		header(2, "Antes → Después"),
		header(3, "Motivo"),
	)
}

func tableRows(data *reports.LedgerReportData) []core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	rows := make([]core.Row, 0, len(data.Rows))
	for _, r := range data.Rows {
		rows = append(rows, row.New(5).Add(
			cell(2, r.Date.Format("02/01/2006 15:04")),
			cell(3, r.MedicationName),
			cell(1, r.Action),
			cell(1, fmt.Sprintf("%+d", r.Delta)),
			cell(2, fmt.Sprintf("%d → %d %s", r.Before, r.After, r.Unit)),
			cell(3, r.Reason),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin movimientos en el período", props.Text{
				Size: 9, Color: colorGray, Align: align.Center,
			})),
		))
	}
	return rows
}

func footerRow(data *reports.LedgerReportData) core.Row {
	return row.New(8).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Total de movimientos: %d", len(data.Rows)), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Color: colorGray, Align: align.Right, Top: 2,
			}),
		),
	)
}
