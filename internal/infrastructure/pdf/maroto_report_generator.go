// Package pdf renderiza el informe financiero mensual del revendedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del usuario  │  Mes del informe             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos | Costo | Impuesto | Beneficio | Margen      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ventas por marketplace                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ventas más rentables del mes                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: régimen fiscal aplicado + fecha de generación       │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reventa-api/internal/application/analytics"
	"github.com/jhoicas/Reventa-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateMonthlyReportPDF genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReportPDF(
	_ context.Context,
	report *reports.MonthlyReport,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe mensual "+report.Period, true).
		WithAuthor(report.UserName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Desglose por marketplace
	m.AddRows(sectionTitleRow("VENTAS POR MARKETPLACE"))
	m.AddRows(platformHeaderRow())
	for _, r := range platformRows(report.Platforms) {
		m.AddRows(r)
	}

	// Ranking del mes
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("VENTAS MÁS RENTABLES DEL MES"))
	m.AddRows(topHeaderRow())
	for _, r := range topRows(report.Top) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del revendedor (izq) y mes del informe (der).
func headerRow(report *reports.MonthlyReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.UserName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe financiero de reventa", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME MENSUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("%s — %s",
				report.From.Format("02/01/2006"),
				report.To.Format("02/01/2006"),
			), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

// kpiRow: los cinco indicadores del mes en una sola fila.
func kpiRow(t analytics.Aggregate) core.Row {
	kpi := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: valueColor, Top: 7,
			}),
		)
	}
	profitColor := colorGreen
	if t.Profit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(16).Add(
		col.New(1),
		kpi("INGRESOS", money(t.Revenue), colorPrimary),
		kpi("COSTO", money(t.Cost), colorPrimary),
		kpi("IMPUESTO", money(t.Tax), colorPrimary),
		kpi("BENEFICIO", money(t.Profit), profitColor),
		kpi("MARGEN", t.Margin.StringFixed(2)+"%", profitColor),
		col.New(1),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// platformHeaderRow: cabecera de la tabla de marketplaces.
func platformHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Marketplace", 3, align.Left),
		h("Ventas", 1, align.Center),
		h("Ingresos", 2, align.Right),
		h("Beneficio", 2, align.Right),
		h("Margen", 2, align.Right),
		h("Precio medio", 2, align.Right),
	)
}

// platformRows: una fila por marketplace, ya ordenadas por ingresos.
func platformRows(platforms []analytics.PlatformAggregate) []core.Row {
	if len(platforms) == 0 {
		return []core.Row{emptyRow("Sin ventas este mes")}
	}
	result := make([]core.Row, 0, len(platforms))
	for _, p := range platforms {
		result = append(result, row.New(6).Add(
			col.New(3).Add(cell(p.Platform, align.Left)),
			col.New(1).Add(cell(fmt.Sprintf("%d", p.SalesCount), align.Center)),
			col.New(2).Add(cell(money(p.Revenue), align.Right)),
			col.New(2).Add(cell(money(p.Profit), align.Right)),
			col.New(2).Add(cell(p.Margin.StringFixed(2)+"%", align.Right)),
			col.New(2).Add(cell(money(p.AveragePrice), align.Right)),
		))
	}
	return result
}

// topHeaderRow: cabecera del ranking de ventas.
func topHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Artículo", 4, align.Left),
		h("Marketplace", 2, align.Left),
		h("Precio", 2, align.Right),
		h("Costo", 2, align.Right),
		h("Beneficio", 2, align.Right),
	)
}

// topRows: una fila por venta destacada, en orden de beneficio descendente.
func topRows(top []analytics.ItemProfit) []core.Row {
	if len(top) == 0 {
		return []core.Row{emptyRow("Sin ventas este mes")}
	}
	result := make([]core.Row, 0, len(top))
	for _, p := range top {
		name := p.Item.Name
		if p.Item.Brand != "" {
			name = p.Item.Brand + " " + name
		}
		platform := p.Item.Platform
		if platform == "" {
			platform = analytics.OtherPlatform
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(cell(name, align.Left)),
			col.New(2).Add(cell(platform, align.Left)),
			col.New(2).Add(cell(money(p.Item.SoldPrice), align.Right)),
			col.New(2).Add(cell(money(p.Cost), align.Right)),
			col.New(2).Add(cell(money(p.Profit), align.Right)),
		))
	}
	return result
}

// footerRow: régimen fiscal aplicado y sello de generación.
func footerRow(report *reports.MonthlyReport) core.Row {
	regimen := "general (22%)"
	if report.ReducedTax {
		regimen = "reducido ACRE (11%)"
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Impuesto estimado sobre ingresos con régimen %s. Informe orientativo, no sustituye la declaración fiscal.",
			regimen,
		), props.Text{Size: 6.5, Color: colorGray, Top: 1}),
		text.New("Generado el "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 6.5, Color: colorGray, Top: 5,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(s string, a align.Type) core.Component {
	return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
	))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
