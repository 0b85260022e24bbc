// Package services wires the document model, configuration, importer, store
// and renderer together. It encapsulates the business rules the CLI invokes:
// building documents, one-way finalization, and JSON+PDF generation.
package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/go-facture/internal/config"
	"github.com/diewo77/go-facture/internal/importer"
	"github.com/diewo77/go-facture/internal/models"
	"github.com/diewo77/go-facture/internal/pdf"
	"github.com/diewo77/go-facture/internal/store"
	"github.com/diewo77/go-facture/internal/validation"
)

// ErrFinalized is returned when finalizing a document that already is a
// numbered invoice. Finalization is one-way.
var ErrFinalized = errors.New("document already finalized")

// Numbering defaults, per document type.
const (
	quotePrefix   = "D-"
	invoicePrefix = "F-"
	numberWidth   = 4
)

// DocumentService encapsulates document-related business logic.
type DocumentService struct {
	cfg  *config.Manager
	geo  pdf.Geometry
	lang string
}

// NewDocumentService returns a service reading company settings from cfg and
// rendering PDFs with the given geometry and label language.
func NewDocumentService(cfg *config.Manager, geo pdf.Geometry, lang string) *DocumentService {
	return &DocumentService{cfg: cfg, geo: geo, lang: lang}
}

// Build assembles a document of the given type from the configured company,
// a customer and validated lines. Lines outside the accepted ranges
// (negative quantity or price, discount or tax outside [0,100]) are rejected
// here, before any total is computed.
func (s *DocumentService) Build(docType models.DocumentType, customer models.Party, lines []models.LineItem, number, notes string) (*models.Document, error) {
	if v := validation.Lines(lines); !v.Empty() {
		return nil, fmt.Errorf("services: invalid lines: %w", v)
	}
	company, err := s.cfg.Company()
	if err != nil {
		return nil, err
	}
	return &models.Document{
		Type:     docType,
		Number:   number,
		Date:     time.Now().Format("2006-01-02"),
		Issuer:   company,
		Customer: customer,
		Lines:    lines,
		Notes:    notes,
	}, nil
}

// ImportQuote parses an external quote JSON file and builds a quote document
// around its customer and lines.
func (s *DocumentService) ImportQuote(path string) (*models.Document, error) {
	q, err := importer.ParseQuoteFile(path)
	if err != nil {
		return nil, err
	}
	return s.Build(models.TypeQuote, q.Customer, q.Lines, "", "")
}

// AssignNumber draws the next number from the per-type sequence and assigns
// it, unless the document already has one.
func (s *DocumentService) AssignNumber(doc *models.Document) error {
	if doc.Number != "" {
		return nil
	}
	prefix := quotePrefix
	if doc.Type == models.TypeInvoice {
		prefix = invoicePrefix
	}
	number, err := s.cfg.NextNumber(doc.Type, prefix, numberWidth)
	if err != nil {
		return err
	}
	doc.Number = number
	return nil
}

// Finalize turns a draft into a numbered invoice. The transition is one-way:
// finalizing an already final document returns ErrFinalized.
func (s *DocumentService) Finalize(doc *models.Document) error {
	if doc.IsFinal() {
		return ErrFinalized
	}
	doc.Type = models.TypeInvoice
	doc.Number = ""
	return s.AssignNumber(doc)
}

// Generate writes the JSON and PDF pair for doc into outDir and returns both
// paths. Unnumbered drafts get a unique draft stem instead of a number.
func (s *DocumentService) Generate(doc *models.Document, outDir string) (jsonPath, pdfPath string, err error) {
	suffix := doc.Number
	if suffix == "" {
		suffix = "draft-" + uuid.NewString()[:8]
	}
	stem := fmt.Sprintf("%s-%s", doc.Type, suffix)
	jsonPath = filepath.Join(outDir, stem+".json")
	pdfPath = filepath.Join(outDir, stem+".pdf")

	if err := store.WriteDocument(jsonPath, doc); err != nil {
		return "", "", err
	}

	geo := s.geo
	if doc.Issuer.LogoMaxWidth > 0 {
		geo.LogoMaxWidth = doc.Issuer.LogoMaxWidth
	}
	if doc.Issuer.LogoMaxHeight > 0 {
		geo.LogoMaxHeight = doc.Issuer.LogoMaxHeight
	}
	if doc.Issuer.LogoMarginRight > 0 {
		geo.LogoMarginRight = doc.Issuer.LogoMarginRight
	}
	if err := pdf.NewRenderer(geo, s.lang).RenderFile(pdfPath, doc); err != nil {
		return "", "", err
	}
	return jsonPath, pdfPath, nil
}
