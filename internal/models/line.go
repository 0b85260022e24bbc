package models

import "github.com/diewo77/go-facture/internal/money"

// LineItem is one billable row of a document: a product or service with a
// quantity, a unit price and an optional discount and tax percentage.
type LineItem struct {
	ItemKey     string  `json:"item_key"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"` // 0..100
	Unit        string  `json:"unit,omitempty"`
	TaxPct      float64 `json:"tax_pct,omitempty"` // 0..100
}

// TotalHT calculates the line total excluding tax, discount applied.
// Always recomputed from the other fields, never stored.
func (li *LineItem) TotalHT() float64 {
	return money.LineTotal(li.Quantity, li.UnitPrice, li.DiscountPct)
}

// TotalTVA calculates the tax amount for this line.
func (li *LineItem) TotalTVA() float64 {
	return money.Percentage(li.TotalHT(), li.TaxPct)
}

// TotalTTC calculates the line total including tax.
func (li *LineItem) TotalTTC() float64 {
	return money.Sum(li.TotalHT(), li.TotalTVA())
}
