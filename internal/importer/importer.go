// Package importer parses external quote JSON files into document lines.
//
// Parsing is deliberately permissive at the line level: entries that are not
// objects or that lack a required key are dropped without error or logging,
// so a partially hand-edited file still imports its valid lines. Structural
// problems and wrong-typed values fail the whole import instead.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/diewo77/go-facture/internal/models"
)

// requiredKeys must all be present for a line entry to be kept.
var requiredKeys = [...]string{"item_key", "description", "quantity", "unit_price"}

// Quote is the result of parsing a quote JSON file.
type Quote struct {
	Customer models.Party
	Lines    []models.LineItem
}

type quoteFile struct {
	Customer *partyEntry       `json:"customer"`
	Lines    []json.RawMessage `json:"lines"`
}

type partyEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	SIRET   string `json:"siret"`
}

type lineEntry struct {
	ItemKey     string  `json:"item_key"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
	Unit        string  `json:"unit"`
	TaxPct      float64 `json:"tax_pct"`
}

// ParseQuote reads a quote JSON document from r.
//
// Lines missing a required key (item_key, description, quantity, unit_price)
// are dropped silently; surviving lines keep their input order with no gap
// markers. A missing discount_pct defaults to 0. A wrong-typed value in a
// kept line is a hard error returned to the caller.
func ParseQuote(r io.Reader) (*Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("importer: reading quote: %w", err)
	}

	var file quoteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("importer: parsing quote: %w", err)
	}

	q := &Quote{}
	if file.Customer != nil {
		q.Customer = models.Party{
			Name:    file.Customer.Name,
			Address: file.Customer.Address,
			Email:   file.Customer.Email,
			Phone:   file.Customer.Phone,
			SIRET:   file.Customer.SIRET,
		}
	}

	for _, raw := range file.Lines {
		// A line must be an object holding every required key; anything
		// else is skipped. This is policy, not error handling.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		if !hasRequiredKeys(fields) {
			continue
		}

		var entry lineEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("importer: malformed line value: %w", err)
		}
		q.Lines = append(q.Lines, models.LineItem{
			ItemKey:     entry.ItemKey,
			Description: entry.Description,
			Quantity:    entry.Quantity,
			UnitPrice:   entry.UnitPrice,
			DiscountPct: entry.DiscountPct,
			Unit:        entry.Unit,
			TaxPct:      entry.TaxPct,
		})
	}

	return q, nil
}

// ParseQuoteFile reads a quote JSON document from path.
func ParseQuoteFile(path string) (*Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("importer: opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseQuote(f)
}

func hasRequiredKeys(fields map[string]json.RawMessage) bool {
	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			return false
		}
	}
	return true
}
