package models

import "github.com/diewo77/go-facture/internal/money"

// DocumentType distinguishes quotes from invoices.
type DocumentType string

const (
	TypeQuote   DocumentType = "quote"
	TypeInvoice DocumentType = "invoice"
)

// Document is a quote or an invoice: issuer and customer metadata plus an
// ordered sequence of lines. Line order is presentation order and is
// preserved through import, export and rendering.
type Document struct {
	Type            DocumentType `json:"type"`
	Number          string       `json:"number,omitempty"`
	Date            string       `json:"date"` // ISO date, opaque to computations
	Issuer          Company      `json:"issuer"`
	Customer        Party        `json:"customer"`
	Lines           []LineItem   `json:"lines"`
	Notes           string       `json:"notes,omitempty"`
	Subject         string       `json:"subject,omitempty"`
	ValidityEndDate string       `json:"validity_end_date,omitempty"`
}

// SubtotalHT calculates the sum of line totals excluding tax.
// An empty document totals 0.00.
func (d *Document) SubtotalHT() float64 {
	totals := make([]float64, len(d.Lines))
	for i := range d.Lines {
		totals[i] = d.Lines[i].TotalHT()
	}
	return money.Sum(totals...)
}

// TotalTVA calculates the total tax amount across lines.
func (d *Document) TotalTVA() float64 {
	totals := make([]float64, len(d.Lines))
	for i := range d.Lines {
		totals[i] = d.Lines[i].TotalTVA()
	}
	return money.Sum(totals...)
}

// NetToPay calculates the amount due including tax.
func (d *Document) NetToPay() float64 {
	return money.Sum(d.SubtotalHT(), d.TotalTVA())
}

// IsFinal returns true once the document is a numbered invoice.
// Finalization is one-way; see services.DocumentService.Finalize.
func (d *Document) IsFinal() bool {
	return d.Type == TypeInvoice && d.Number != ""
}

// IsDraft returns true while the document can still change.
func (d *Document) IsDraft() bool {
	return !d.IsFinal()
}

// CanEdit returns true if lines can still be added, removed or edited.
func (d *Document) CanEdit() bool {
	return d.IsDraft()
}
