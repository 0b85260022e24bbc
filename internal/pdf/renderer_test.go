package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/diewo77/go-facture/internal/models"
)

func testDocument(lineCount int) *models.Document {
	doc := &models.Document{
		Type:   models.TypeQuote,
		Number: "D-0001",
		Date:   "2026-01-15",
		Issuer: models.Company{
			Name:    "Ma Société",
			Address: "1 rue de la Paix",
			Email:   "contact@example.com",
			Phone:   "+33 1 23 45 67 89",
			SIRET:   "123 456 789 00010",
		},
		Customer: models.Party{Name: "Client SA", Address: "Somewhere"},
		Notes:    "Ligne A\nLigne B",
	}
	for i := 0; i < lineCount; i++ {
		doc.Lines = append(doc.Lines, models.LineItem{
			ItemKey:     fmt.Sprintf("k%d", i),
			Description: fmt.Sprintf("Ligne %d", i),
			Quantity:    1,
			UnitPrice:   1,
		})
	}
	return doc
}

func writeTestLogo(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating logo: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding logo: %v", err)
	}
	return path
}

func TestRender_ProducesNonEmptyPDF(t *testing.T) {
	for _, docType := range []models.DocumentType{models.TypeQuote, models.TypeInvoice} {
		t.Run(string(docType), func(t *testing.T) {
			doc := testDocument(2)
			doc.Type = docType

			var buf bytes.Buffer
			r := NewRenderer(DefaultGeometry(), "fr")
			if err := r.Render(&buf, doc); err != nil {
				t.Fatalf("render: %v", err)
			}
			if buf.Len() < 200 {
				t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
			}
		})
	}
}

func TestRender_ZeroLines(t *testing.T) {
	doc := testDocument(0)
	doc.Notes = ""

	var buf bytes.Buffer
	r := NewRenderer(DefaultGeometry(), "fr")
	if err := r.Render(&buf, doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestRender_MultiPage(t *testing.T) {
	g := DefaultGeometry()
	rows := g.RowsPerPage(297)

	var single, multi bytes.Buffer
	r := NewRenderer(g, "fr")
	if err := r.Render(&single, testDocument(1)); err != nil {
		t.Fatalf("render single: %v", err)
	}
	if err := r.Render(&multi, testDocument(rows*2+1)); err != nil {
		t.Fatalf("render multi: %v", err)
	}
	if multi.Len() <= single.Len() {
		t.Errorf("multi-page PDF (%d bytes) not larger than single page (%d bytes)",
			multi.Len(), single.Len())
	}
}

func TestRender_MissingLogoDegrades(t *testing.T) {
	doc := testDocument(2)
	doc.Issuer.LogoPath = filepath.Join(t.TempDir(), "no-logo.png")

	var buf bytes.Buffer
	r := NewRenderer(DefaultGeometry(), "fr")
	if err := r.Render(&buf, doc); err != nil {
		t.Fatalf("render with unreadable logo must not fail: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestRender_CorruptLogoDegrades(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := testDocument(2)
	doc.Issuer.LogoPath = path

	var buf bytes.Buffer
	r := NewRenderer(DefaultGeometry(), "fr")
	if err := r.Render(&buf, doc); err != nil {
		t.Fatalf("render with corrupt logo must not fail: %v", err)
	}
}

func TestRender_WithLogo(t *testing.T) {
	doc := testDocument(2)
	doc.Issuer.LogoPath = writeTestLogo(t, t.TempDir(), 320, 80)

	var buf bytes.Buffer
	r := NewRenderer(DefaultGeometry(), "fr")
	if err := r.Render(&buf, doc); err != nil {
		t.Fatalf("render with logo: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
}

func TestProbeLogo(t *testing.T) {
	path := writeTestLogo(t, t.TempDir(), 320, 80)

	info, err := probeLogo(path)
	if err != nil {
		t.Fatalf("probeLogo: %v", err)
	}
	if info.width != 320 || info.height != 80 {
		t.Errorf("dimensions = %vx%v, want 320x80", info.width, info.height)
	}
	if info.imageType != "PNG" {
		t.Errorf("imageType = %q, want PNG", info.imageType)
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "quote.pdf")

	r := NewRenderer(DefaultGeometry(), "fr")
	if err := r.RenderFile(path, testDocument(3)); err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() < 200 {
		t.Errorf("PDF file suspiciously small: %d bytes", info.Size())
	}
}
