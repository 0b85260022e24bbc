package validation

import (
	"testing"

	"github.com/diewo77/go-facture/internal/models"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name       string
		line       models.LineItem
		wantFields []string
	}{
		{
			name: "valid line",
			line: models.LineItem{ItemKey: "svc", Quantity: 2, UnitPrice: 100, DiscountPct: 10},
		},
		{
			name: "zero quantity and price are allowed",
			line: models.LineItem{ItemKey: "svc"},
		},
		{
			name:       "missing key",
			line:       models.LineItem{Quantity: 1, UnitPrice: 10},
			wantFields: []string{"item_key"},
		},
		{
			name:       "negative quantity",
			line:       models.LineItem{ItemKey: "svc", Quantity: -1, UnitPrice: 10},
			wantFields: []string{"quantity"},
		},
		{
			name:       "negative price",
			line:       models.LineItem{ItemKey: "svc", Quantity: 1, UnitPrice: -10},
			wantFields: []string{"unit_price"},
		},
		{
			name:       "discount above 100",
			line:       models.LineItem{ItemKey: "svc", Quantity: 1, UnitPrice: 10, DiscountPct: 120},
			wantFields: []string{"discount_pct"},
		},
		{
			name:       "negative discount",
			line:       models.LineItem{ItemKey: "svc", Quantity: 1, UnitPrice: 10, DiscountPct: -5},
			wantFields: []string{"discount_pct"},
		},
		{
			name:       "tax above 100",
			line:       models.LineItem{ItemKey: "svc", Quantity: 1, UnitPrice: 10, TaxPct: 101},
			wantFields: []string{"tax_pct"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Line(tt.line)
			if len(tt.wantFields) == 0 {
				if !v.Empty() {
					t.Fatalf("expected no violations, got %v", v)
				}
				return
			}
			if len(v) != len(tt.wantFields) {
				t.Fatalf("got %d violations (%v), want %d", len(v), v, len(tt.wantFields))
			}
			for _, f := range tt.wantFields {
				if _, ok := v[f]; !ok {
					t.Errorf("missing violation for %s in %v", f, v)
				}
			}
		})
	}
}

func TestLines_PrefixesPosition(t *testing.T) {
	v := Lines([]models.LineItem{
		{ItemKey: "ok", Quantity: 1, UnitPrice: 10},
		{Quantity: -1, UnitPrice: 10},
	})
	if _, ok := v["lines[2].item_key"]; !ok {
		t.Errorf("expected lines[2].item_key violation, got %v", v)
	}
	if _, ok := v["lines[2].quantity"]; !ok {
		t.Errorf("expected lines[2].quantity violation, got %v", v)
	}
	if len(v) != 2 {
		t.Errorf("got %d violations, want 2: %v", len(v), v)
	}
}

func TestViolations_Error(t *testing.T) {
	v := Violations{"b": "out_of_range", "a": "required"}
	if got := v.Error(); got != "a: required; b: out_of_range" {
		t.Errorf("Error() = %q", got)
	}
}
