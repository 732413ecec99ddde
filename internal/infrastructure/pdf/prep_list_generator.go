// Package pdf genera la lista de preparación imprimible para la cocina.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del local  │  Fecha objetivo                 │
//	│  Días comparables usados                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empanada | Total a preparar                          │
//	│  TABLA: Hora | Unidades (cronograma de horneado)             │
//	│  Bebidas: total del día                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Cantidad | Unidad                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

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

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.PrepListPDFGenerator = (*PrepListGenerator)(nil)

// PrepListGenerator implementa usecase.PrepListPDFGenerator usando Maroto v2.
type PrepListGenerator struct{}

// NewPrepListGenerator construye el generador.
func NewPrepListGenerator() *PrepListGenerator { return &PrepListGenerator{} }

// GeneratePrepListPDF genera el PDF de la lista de preparación y devuelve sus bytes.
func (g *PrepListGenerator) GeneratePrepListPDF(
	_ context.Context,
	shopName string,
	forecast *dto.ForecastDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Prep List "+forecast.TargetDate, true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shopName, forecast))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if forecast.IsEmpty {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No comparable sales history found for this date.", props.Text{
				Size: 10, Top: 4, Color: colorGray,
			}),
		)))
		return generate(m)
	}

	// Totales de empanadas
	m.AddRows(sectionTitle("EMPANADAS TO PREP"))
	m.AddRows(twoColHeader("Empanada", "Units"))
	for _, r := range empanadaRows(forecast) {
		m.AddRows(r)
	}

	// Cronograma por hora
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("BAKING SCHEDULE"))
	m.AddRows(twoColHeader("Hour", "Units"))
	for _, r := range scheduleRows(forecast) {
		m.AddRows(r)
	}

	// Bebidas
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("DRINKS"))
	for _, r := range drinkRows(forecast) {
		m.AddRows(r)
	}

	// Ingredientes
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("SHOPPING LIST"))
	if len(forecast.IngredientTotals) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Recipes not configured.", props.Text{Size: 9, Top: 1, Color: colorGray}),
		)))
	} else {
		for _, r := range ingredientRows(forecast.IngredientTotals) {
			m.AddRows(r)
		}
	}

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del local (izq), fecha objetivo y días comparables (der).
func headerRow(shopName string, forecast *dto.ForecastDTO) core.Row {
	comparable := "no comparable days"
	if len(forecast.ComparableDates) > 0 {
		comparable = "Based on: " + strings.Join(forecast.ComparableDates, ", ")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(comparable, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PREP LIST", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(forecast.TargetDate, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func twoColHeader(left, right string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(left, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		})),
		col.New(4).Add(text.New(right, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1,
		})),
	)
}

func twoColRow(left, right string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(left, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(right, props.Text{
			Size: 9, Align: align.Right, Top: 1, Style: style,
		})),
	)
}

// empanadaRows: una fila por variedad en el orden del catálogo, más el total.
func empanadaRows(forecast *dto.ForecastDTO) []core.Row {
	var result []core.Row
	total := 0
	for _, s := range forecast.SKUs {
		if s.Category != "empanada" {
			continue
		}
		units := forecast.EmpanadaTotals[s.ID]
		total += units
		result = append(result, twoColRow(s.Name, fmt.Sprintf("%d", units), false))
	}
	result = append(result, twoColRow("Total", fmt.Sprintf("%d", total), true))
	return result
}

// scheduleRows: unidades agregadas por hora de la ventana, orden cronológico.
func scheduleRows(forecast *dto.ForecastDTO) []core.Row {
	hours := make([]int, 0, len(forecast.EmpanadaByHour))
	for h := range forecast.EmpanadaByHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	result := make([]core.Row, 0, len(hours))
	for _, h := range hours {
		units := 0
		for _, q := range forecast.EmpanadaByHour[h] {
			units += q
		}
		result = append(result, twoColRow(hourLabel(h), fmt.Sprintf("%d", units), false))
	}
	return result
}

func drinkRows(forecast *dto.ForecastDTO) []core.Row {
	var result []core.Row
	for _, s := range forecast.SKUs {
		if s.Category != "drink" {
			continue
		}
		result = append(result, twoColRow(s.Name, fmt.Sprintf("%d", forecast.DrinkTotals[s.ID]), false))
	}
	result = append(result, twoColRow("Total", fmt.Sprintf("%d", forecast.DrinkTotalUnits), true))
	return result
}

func ingredientRows(totals []dto.IngredientTotalDTO) []core.Row {
	result := make([]core.Row, 0, len(totals))
	for _, ing := range totals {
		result = append(result, twoColRow(ing.Name, fmt.Sprintf("%d %s", ing.Total, ing.Unit), false))
	}
	return result
}

// hourLabel formatea una hora local en 12h: 11 → "11am", 13 → "1pm".
func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12am"
	case h < 12:
		return fmt.Sprintf("%dam", h)
	case h == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", h-12)
	}
}
