package pdf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/diewo77/go-facture/internal/i18n"
	"github.com/diewo77/go-facture/internal/models"
)

// Renderer draws documents as paginated PDFs according to a fixed Geometry.
type Renderer struct {
	geo  Geometry
	lang string
	log  *slog.Logger
}

// NewRenderer returns a renderer for the given geometry and label language.
func NewRenderer(geo Geometry, lang string) *Renderer {
	return &Renderer{geo: geo, lang: lang, log: slog.Default()}
}

// Render writes the document as a PDF to w.
//
// Every page carries the header (localized type, number, date, issuer and
// customer blocks, optional logo) and a footer with "Page n/m". The line
// table is sliced across pages per Paginate; subtotal, tax total, net to
// pay and notes appear only on the last page. An unreadable logo file is
// logged as a warning and rendering continues without it.
func (r *Renderer) Render(w io.Writer, doc *models.Document) error {
	g := r.geo

	pdf := gofpdf.New("P", "mm", g.PageSize, "")
	pdf.SetTitle(fmt.Sprintf("%s %s", r.title(doc), doc.Number), true)
	pdf.SetAuthor(doc.Issuer.Name, true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - g.MarginLeft - g.MarginRight

	var logo *logoInfo
	if doc.Issuer.LogoPath != "" {
		var err error
		logo, err = probeLogo(doc.Issuer.LogoPath)
		if err != nil {
			r.log.Warn("rendering without logo", "path", doc.Issuer.LogoPath, "error", err)
		}
	}

	pages := Paginate(len(doc.Lines), g.RowsPerPage(pageH), g.SummaryRows())
	widths := r.columnWidths(contentW)

	for i, ps := range pages {
		pdf.AddPage()
		r.drawHeader(pdf, tr, doc, logo, pageW)
		y := r.drawTableHeader(pdf, tr, widths)
		for _, li := range doc.Lines[ps.Start:ps.End] {
			r.drawLine(pdf, tr, &li, widths, y)
			y += g.RowHeight
		}
		if ps.Summary {
			r.drawSummary(pdf, tr, doc, pageW, y)
		}
		r.drawFooter(pdf, tr, i+1, len(pages), pageW, pageH)
	}

	if pdf.Err() {
		return fmt.Errorf("pdf: rendering %s: %w", doc.Type, pdf.Error())
	}
	return pdf.Output(w)
}

// RenderFile writes the document as a PDF file at path, creating parent
// directories as needed.
func (r *Renderer) RenderFile(path string, doc *models.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("pdf: creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: creating %s: %w", path, err)
	}
	if err := r.Render(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pdf: closing %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) title(doc *models.Document) string {
	if doc.Type == models.TypeInvoice {
		return i18n.T(r.lang, "title_invoice")
	}
	return i18n.T(r.lang, "title_quote")
}

// columnWidths returns the table column widths: description absorbs the
// space left over by the fixed numeric columns.
func (r *Renderer) columnWidths(contentW float64) [7]float64 {
	widths := [7]float64{0, 16, 16, 24, 16, 16, 34}
	fixed := 0.0
	for _, w := range widths[1:] {
		fixed += w
	}
	widths[0] = contentW - fixed
	return widths
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc *models.Document, logo *logoInfo, pageW float64) {
	g := r.geo
	left := g.MarginLeft
	y := g.MarginTop

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(left, y)
	pdf.CellFormat(120, 7, tr(fmt.Sprintf("%s %s", r.title(doc), doc.Number)), "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(left, y)
	pdf.CellFormat(120, 5, tr(fmt.Sprintf("%s: %s", i18n.T(r.lang, "date"), doc.Date)), "", 0, "L", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	if doc.Subject != "" {
		pdf.SetXY(left, y)
		pdf.CellFormat(120, 4.5, tr(fmt.Sprintf("%s: %s", i18n.T(r.lang, "subject"), doc.Subject)), "", 0, "L", false, 0, "")
		y += 5
	}
	if doc.ValidityEndDate != "" {
		pdf.SetXY(left, y)
		pdf.CellFormat(120, 4.5, tr(fmt.Sprintf("%s: %s", i18n.T(r.lang, "validity"), doc.ValidityEndDate)), "", 0, "L", false, 0, "")
		y += 5
	}
	y += 3

	mid := left + (pageW-g.MarginLeft-g.MarginRight)/2
	r.drawPartyBlock(pdf, tr, i18n.T(r.lang, "issuer"), partyLines(doc.Issuer.Name, doc.Issuer.Address, doc.Issuer.Email, doc.Issuer.Phone, doc.Issuer.SIRET, r.lang), left, y)
	r.drawPartyBlock(pdf, tr, i18n.T(r.lang, "customer"), partyLines(doc.Customer.Name, doc.Customer.Address, doc.Customer.Email, doc.Customer.Phone, doc.Customer.SIRET, r.lang), mid+5, y)

	if logo != nil {
		w, h := FitBox(logo.width, logo.height, g.LogoMaxWidth, g.LogoMaxHeight)
		x := pageW - g.MarginRight - g.LogoMarginRight - w
		pdf.ImageOptions(logo.path, x, g.MarginTop, w, h, false,
			gofpdf.ImageOptions{ImageType: logo.imageType, ReadDpi: false}, 0, "")
	}

	sepY := g.MarginTop + g.HeaderHeight - 3
	pdf.Line(left, sepY, pageW-g.MarginRight, sepY)
}

func partyLines(name, address, email, phone, siret, lang string) []string {
	lines := []string{name}
	if address != "" {
		lines = append(lines, address)
	}
	if email != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", i18n.T(lang, "email"), email))
	}
	if phone != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", i18n.T(lang, "phone"), phone))
	}
	if siret != "" {
		lines = append(lines, fmt.Sprintf("SIRET: %s", siret))
	}
	return lines
}

func (r *Renderer) drawPartyBlock(pdf *gofpdf.Fpdf, tr func(string) string, label string, lines []string, x, y float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x, y)
	pdf.CellFormat(80, 5, tr(label), "", 0, "L", false, 0, "")
	y += 6
	pdf.SetFont("Helvetica", "", 9)
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(80, 4.5, tr(ln), "", 0, "L", false, 0, "")
		y += 5
	}
}

// drawTableHeader draws the column header row and returns the Y coordinate
// of the first data row.
func (r *Renderer) drawTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, widths [7]float64) float64 {
	g := r.geo
	y := g.MarginTop + g.HeaderHeight
	headers := []string{
		i18n.T(r.lang, "th_description"),
		i18n.T(r.lang, "th_unit"),
		i18n.T(r.lang, "th_qty"),
		i18n.T(r.lang, "th_unit_price"),
		i18n.T(r.lang, "th_tax"),
		i18n.T(r.lang, "th_discount"),
		i18n.T(r.lang, "th_total"),
	}
	aligns := []string{"L", "C", "R", "R", "R", "R", "R"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(g.MarginLeft, y)
	for i, h := range headers {
		pdf.CellFormat(widths[i], g.RowHeight, tr(h), "", 0, aligns[i], false, 0, "")
	}
	lineY := y + g.RowHeight - 1
	pdf.Line(g.MarginLeft, lineY, g.MarginLeft+widthSum(widths), lineY)
	return y + g.RowHeight
}

func (r *Renderer) drawLine(pdf *gofpdf.Fpdf, tr func(string) string, li *models.LineItem, widths [7]float64, y float64) {
	g := r.geo
	desc := li.Description
	if desc == "" {
		desc = li.ItemKey
	}

	cells := []string{
		desc,
		li.Unit,
		strconv.FormatFloat(li.Quantity, 'g', -1, 64),
		formatAmount(li.UnitPrice),
		strconv.FormatFloat(li.TaxPct, 'f', 0, 64),
		strconv.FormatFloat(li.DiscountPct, 'f', 0, 64),
		formatAmount(li.TotalHT()),
	}
	aligns := []string{"L", "C", "R", "R", "R", "R", "R"}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(g.MarginLeft, y)
	for i, c := range cells {
		pdf.CellFormat(widths[i], g.RowHeight, tr(c), "", 0, aligns[i], false, 0, "")
	}
}

func (r *Renderer) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, doc *models.Document, pageW, y float64) {
	g := r.geo
	left := g.MarginLeft
	right := pageW - g.MarginRight

	y += 2
	pdf.Line(left, y, right, y)
	y += 7

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(left, y)
	pdf.CellFormat(right-left, 5.5, tr(fmt.Sprintf("%s: %s €", i18n.T(r.lang, "subtotal"), formatAmount(doc.SubtotalHT()))), "", 0, "R", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(left, y)
	pdf.CellFormat(right-left, 5, tr(fmt.Sprintf("%s: %s €", i18n.T(r.lang, "total_tva"), formatAmount(doc.TotalTVA()))), "", 0, "R", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(left, y)
	pdf.CellFormat(right-left, 6, tr(fmt.Sprintf("%s: %s €", i18n.T(r.lang, "net_to_pay"), formatAmount(doc.NetToPay()))), "", 0, "R", false, 0, "")
	y += 9

	if doc.Notes != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(left, y)
		pdf.CellFormat(right-left, 5, tr(i18n.T(r.lang, "notes")+":"), "", 0, "L", false, 0, "")
		y += 6
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(left, y)
		pdf.MultiCell(right-left, 4.5, tr(doc.Notes), "", "L", false)
	}
}

func (r *Renderer) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, page, total int, pageW, pageH float64) {
	g := r.geo
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(g.MarginLeft, pageH-g.MarginBottom-g.FooterHeight+2)
	pdf.CellFormat(pageW-g.MarginLeft-g.MarginRight, 5,
		tr(fmt.Sprintf("%s %d/%d", i18n.T(r.lang, "page"), page, total)), "", 0, "C", false, 0, "")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func widthSum(widths [7]float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total
}
