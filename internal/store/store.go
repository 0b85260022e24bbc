// Package store persists documents as flat JSON files.
//
// Files carry the computed totals (total_ht per line, subtotal_ht, total_tva,
// net_to_pay) for the benefit of external readers, but those values are
// always recomputed from the raw fields on write; when a file is read back
// the model recomputes them again, so stored totals are display data only.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diewo77/go-facture/internal/models"
)

type documentFile struct {
	Type            models.DocumentType `json:"type"`
	Number          string              `json:"number,omitempty"`
	Date            string              `json:"date"`
	Issuer          models.Company      `json:"issuer"`
	Customer        models.Party        `json:"customer"`
	Lines           []lineFile          `json:"lines"`
	SubtotalHT      float64             `json:"subtotal_ht"`
	TotalTVA        float64             `json:"total_tva"`
	NetToPay        float64             `json:"net_to_pay"`
	Notes           string              `json:"notes,omitempty"`
	Subject         string              `json:"subject,omitempty"`
	ValidityEndDate string              `json:"validity_end_date,omitempty"`
}

type lineFile struct {
	models.LineItem
	TotalHT float64 `json:"total_ht"`
}

// WriteDocument writes doc as an indented JSON file at path, atomically,
// creating parent directories as needed.
func WriteDocument(path string, doc *models.Document) error {
	file := documentFile{
		Type:            doc.Type,
		Number:          doc.Number,
		Date:            doc.Date,
		Issuer:          doc.Issuer,
		Customer:        doc.Customer,
		Lines:           make([]lineFile, len(doc.Lines)),
		SubtotalHT:      doc.SubtotalHT(),
		TotalTVA:        doc.TotalTVA(),
		NetToPay:        doc.NetToPay(),
		Notes:           doc.Notes,
		Subject:         doc.Subject,
		ValidityEndDate: doc.ValidityEndDate,
	}
	for i := range doc.Lines {
		file.Lines[i] = lineFile{LineItem: doc.Lines[i], TotalHT: doc.Lines[i].TotalHT()}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding document: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: creating output directory: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", path, err)
	}
	return nil
}

// ReadDocument reads a document previously written by WriteDocument.
// Stored totals are dropped; the model recomputes them on demand.
func ReadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}

	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", path, err)
	}

	doc := &models.Document{
		Type:            file.Type,
		Number:          file.Number,
		Date:            file.Date,
		Issuer:          file.Issuer,
		Customer:        file.Customer,
		Lines:           make([]models.LineItem, len(file.Lines)),
		Notes:           file.Notes,
		Subject:         file.Subject,
		ValidityEndDate: file.ValidityEndDate,
	}
	for i := range file.Lines {
		doc.Lines[i] = file.Lines[i].LineItem
	}
	return doc, nil
}
