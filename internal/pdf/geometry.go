// Package pdf renders documents as paginated PDF files.
//
// Layout is split in two: a pure pagination plan (Paginate) computed from a
// Geometry, and a renderer that draws each planned page with gofpdf. The
// plan is what tests exercise; the renderer only walks it.
package pdf

import "math"

// Geometry describes the fixed page layout used by the renderer, in
// millimeters. It is passed in explicitly; the renderer reads no ambient
// configuration.
type Geometry struct {
	PageSize string // gofpdf page size name, e.g. "A4"

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// HeaderHeight reserves room on every page for the title, date,
	// issuer/customer blocks and the logo. FooterHeight reserves room for
	// the page number line.
	HeaderHeight float64
	FooterHeight float64

	// RowHeight is the fixed height of one table row. SummaryHeight is the
	// space needed by the subtotal block and the notes heading on the last
	// page.
	RowHeight     float64
	SummaryHeight float64

	// Logo bounding box; images are scaled down into it preserving aspect
	// ratio, and positioned LogoMarginRight from the right page edge.
	LogoMaxWidth    float64
	LogoMaxHeight   float64
	LogoMarginRight float64
}

// DefaultGeometry returns the portrait A4 layout used by the application.
func DefaultGeometry() Geometry {
	return Geometry{
		PageSize:        "A4",
		MarginLeft:      15,
		MarginRight:     15,
		MarginTop:       15,
		MarginBottom:    15,
		HeaderHeight:    62,
		FooterHeight:    10,
		RowHeight:       7,
		SummaryHeight:   35,
		LogoMaxWidth:    40,
		LogoMaxHeight:   20,
		LogoMarginRight: 5,
	}
}

// TableHeight returns the vertical space available for the line table on one
// page, column header row included.
func (g Geometry) TableHeight(pageHeight float64) float64 {
	return pageHeight - g.MarginTop - g.MarginBottom - g.HeaderHeight - g.FooterHeight
}

// RowsPerPage returns how many line rows fit on one page, after the column
// header row. Always at least 1 so pagination can make progress.
func (g Geometry) RowsPerPage(pageHeight float64) int {
	n := int((g.TableHeight(pageHeight) - g.RowHeight) / g.RowHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// SummaryRows returns the summary block size expressed in row slots.
func (g Geometry) SummaryRows() int {
	if g.RowHeight <= 0 {
		return 0
	}
	return int(math.Ceil(g.SummaryHeight / g.RowHeight))
}

// FitBox scales (w, h) down to fit inside (maxW, maxH) preserving the aspect
// ratio. Dimensions already inside the box come back unchanged; images are
// never scaled up. A non-positive max on either axis leaves that axis
// unconstrained.
func FitBox(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := 1.0
	if maxW > 0 {
		if s := maxW / w; s < scale {
			scale = s
		}
	}
	if maxH > 0 {
		if s := maxH / h; s < scale {
			scale = s
		}
	}
	return w * scale, h * scale
}
