// Package report turns a filtered record set plus its aggregated statistics
// into exportable documents: a paginated tabular PDF, chart PNGs and an XLSX
// sheet. Export is a pure rendering step; it never touches the store.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"secad-service/internal/domain/asset"
	"secad-service/internal/domain/vehicle"
	"secad-service/internal/stats"
)

const (
	pageMargin = 14.0
	lineHeight = 7.0
)

const dateLayout = "02/01/2006"

// VehicleReport bundles everything the renderer needs for one document.
type VehicleReport struct {
	Filters  vehicle.ReportFilters
	Vehicles []vehicle.Vehicle
	Stats    stats.VehicleStats
}

// AssetReport bundles the asset-side document input.
type AssetReport struct {
	Filters ReportPeriod
	Sector  string
	Assets  []asset.Asset
	Stats   stats.AssetStats
}

// ReportPeriod is the optional date window shown in the filter summary.
type ReportPeriod struct {
	From string
	To   string
}

// doc wraps fpdf with the manual vertical cursor the prose sections use.
// The cursor is checked before every line; a line that would not fit starts
// a new page. Grouped subsections reserve their whole block up front so a
// group header is never stranded at a page bottom.
type doc struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	y     float64
	pageH float64
}

func newDoc() *doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	_, pageH := pdf.GetPageSize()
	return &doc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		y:     pageMargin,
		pageH: pageH,
	}
}

// ensure breaks the page when the next required vertical space does not fit,
// resetting the cursor to the top margin.
func (d *doc) ensure(required float64) {
	if d.y+required > d.pageH-pageMargin {
		d.pdf.AddPage()
		d.y = pageMargin
	}
}

func (d *doc) line(text string, indent float64) {
	d.ensure(lineHeight)
	d.pdf.Text(pageMargin+indent, d.y+lineHeight-2, d.tr(text))
	d.y += lineHeight
}

func (d *doc) gap() { d.y += lineHeight }

func (d *doc) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.line(text, 0)
	d.pdf.SetFont("Helvetica", "", 12)
}

func (d *doc) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.line(text, 0)
	d.pdf.SetFont("Helvetica", "", 12)
}

// RenderVehiclePDF writes the paginated vehicle report.
func RenderVehiclePDF(w io.Writer, r VehicleReport) error {
	d := newDoc()
	s := r.Stats

	d.title("Relatório de Veículos")
	d.line(fmt.Sprintf("Período: %s até %s",
		periodLabel(r.Filters.DateFrom, "Início"),
		periodLabel(r.Filters.DateTo, "Fim")), 0)
	d.line("Cidade: "+orAll(r.Filters.City, "Todas"), 0)
	d.gap()

	d.heading("Resumo Geral:")
	d.line(fmt.Sprintf("Total de Veículos: %d", s.Total), 6)
	d.line(fmt.Sprintf("Veículos Liberados: %d", s.Released), 6)
	d.line(fmt.Sprintf("Veículos Não Liberados: %d", s.NotReleased), 6)
	d.gap()

	d.heading("Por Cidade:")
	writeSplitGroups(d, s.ByCity)
	d.gap()

	d.heading("Por Tipo de Veículo:")
	writeSplitGroups(d, s.ByType)
	d.gap()

	d.ensure(3 * lineHeight)
	d.heading("Status das Chaves:")
	d.line(fmt.Sprintf("Com Chave: %d", s.ByKey.Yes), 6)
	d.line(fmt.Sprintf("Sem Chave: %d", s.ByKey.No), 6)
	d.gap()

	d.heading("Por Estado:")
	for _, c := range s.ByState {
		if c.Count == 0 {
			continue
		}
		d.line(fmt.Sprintf("%s: %d", c.Key, c.Count), 6)
	}
	d.gap()

	d.ensure(4 * lineHeight)
	d.heading("Lista Detalhada de Veículos:")
	d.gap()

	t := newTable(d, []col{
		{"Placa", 32},
		{"Marca/Modelo", 40},
		{"Tipo", 28},
		{"Cidade", 26},
		{"Data Vistoria", 28},
		{"Data Liberação", 28},
	})
	for i := range r.Vehicles {
		v := &r.Vehicles[i]
		release := "Não liberado"
		if v.ReleaseDate != nil {
			release = v.ReleaseDate.Format(dateLayout)
		}
		t.row([]string{
			fmt.Sprintf("%s (%s)", v.Plate, v.State),
			strings.TrimSpace(v.Brand + " " + v.Model),
			v.VehicleType,
			v.City,
			v.InspectionDate.Format(dateLayout),
			release,
		})
	}
	t.done()

	return d.pdf.Output(w)
}

// RenderAssetPDF writes the paginated asset report.
func RenderAssetPDF(w io.Writer, r AssetReport) error {
	d := newDoc()
	s := r.Stats

	d.title("Relatório de Patrimônio")
	d.line("Setor: "+orAll(r.Sector, "Todos"), 0)
	d.line(fmt.Sprintf("Período: %s até %s",
		periodLabel(r.Filters.From, "Início"),
		periodLabel(r.Filters.To, "Fim")), 0)
	d.gap()

	d.heading("Resumo Geral:")
	d.line(fmt.Sprintf("Total de Itens: %d", s.Total), 6)
	d.line("Valor Total: "+FormatCurrency(s.TotalValue), 6)
	d.gap()

	d.heading("Por Setor:")
	for _, b := range s.BySector {
		if b.Count == 0 {
			continue
		}
		d.line(fmt.Sprintf("%s: %d itens - %s", b.Key, b.Count, FormatCurrency(b.Value)), 6)
	}
	d.gap()

	d.ensure(4 * lineHeight)
	d.heading("Lista Detalhada:")
	d.gap()

	t := newTable(d, []col{
		{"Plaquetas", 36},
		{"Descrição", 56},
		{"Setor", 32},
		{"Estado", 24},
		{"Valor", 34},
	})
	for i := range r.Assets {
		a := &r.Assets[i]
		t.row([]string{
			fmt.Sprintf("G: %s / L: %s", a.GeneralTag, a.LocalTag),
			a.Description,
			a.Sector,
			a.ConservationState,
			FormatCurrency(a.NetValue),
		})
	}
	t.done()

	return d.pdf.Output(w)
}

// writeSplitGroups emits one two-line block per non-empty bucket, reserving
// the whole block so the group name stays with its numbers.
func writeSplitGroups(d *doc, groups []stats.ReleaseSplit) {
	for _, g := range groups {
		if g.Total == 0 {
			continue
		}
		d.ensure(2*lineHeight + 2)
		d.line(g.Key+":", 6)
		d.line(fmt.Sprintf("Total: %d | Liberados: %d | Não Liberados: %d",
			g.Total, g.Released, g.NotReleased), 12)
		d.y += 2
	}
}

type col struct {
	header string
	width  float64
}

// table is the auto-flowing itemized list. It paginates on its own: a row
// that does not fit starts a new page and repeats the header.
type table struct {
	d    *doc
	cols []col
	rowH float64
}

func newTable(d *doc, cols []col) *table {
	t := &table{d: d, cols: cols, rowH: 6}
	t.header()
	return t
}

func (t *table) header() {
	d := t.d
	d.ensure(t.rowH)
	d.pdf.SetFont("Helvetica", "B", 8)
	d.pdf.SetFillColor(66, 66, 166)
	d.pdf.SetTextColor(255, 255, 255)
	x := pageMargin
	for _, c := range t.cols {
		d.pdf.Rect(x, d.y, c.width, t.rowH, "F")
		d.pdf.Text(x+1, d.y+t.rowH-2, d.tr(c.header))
		x += c.width
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "", 8)
	d.y += t.rowH
}

func (t *table) row(cells []string) {
	d := t.d
	if d.y+t.rowH > d.pageH-pageMargin {
		d.pdf.AddPage()
		d.y = pageMargin
		t.header()
	}
	x := pageMargin
	for i, c := range t.cols {
		text := ""
		if i < len(cells) {
			text = clip(d, cells[i], c.width-2)
		}
		d.pdf.Text(x+1, d.y+t.rowH-2, d.tr(text))
		x += c.width
	}
	d.pdf.Line(pageMargin, d.y+t.rowH, x, d.y+t.rowH)
	d.y += t.rowH
}

func (t *table) done() {
	t.d.pdf.SetFont("Helvetica", "", 12)
}

// clip truncates cell text to the column width with an ellipsis.
func clip(d *doc, s string, width float64) string {
	if d.pdf.GetStringWidth(d.tr(s)) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 1 && d.pdf.GetStringWidth(d.tr(string(r)+"…")) > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func periodLabel(s, fallback string) string {
	if s == "" {
		return fallback
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(dateLayout)
	}
	return s
}

func orAll(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// FormatCurrency renders a BRL amount with pt-BR separators.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := fmt.Sprintf("R$ %s,%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
