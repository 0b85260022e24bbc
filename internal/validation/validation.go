// Package validation holds the input checks applied at the CLI and import
// boundary before values reach the calculators, which assume pre-validated
// input. Violation codes are i18n label codes.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diewo77/go-facture/internal/models"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error formats the violations as a single message, fields sorted for
// stable output.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, v[f])
	}
	return strings.Join(parts, "; ")
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// Line checks one document line: non-empty item key, non-negative quantity
// and unit price, discount and tax percentages within [0, 100].
func Line(li models.LineItem) Violations {
	v := Violations{}
	Required("item_key", li.ItemKey, v)
	NonNegativeFloat("quantity", li.Quantity, v)
	NonNegativeFloat("unit_price", li.UnitPrice, v)
	RangeFloat("discount_pct", li.DiscountPct, 0, 100, v)
	RangeFloat("tax_pct", li.TaxPct, 0, 100, v)
	return v
}

// Lines checks a full line sequence; field names are prefixed with the
// 1-based line position.
func Lines(lines []models.LineItem) Violations {
	v := Violations{}
	for i, li := range lines {
		for field, code := range Line(li) {
			v[fmt.Sprintf("lines[%d].%s", i+1, field)] = code
		}
	}
	return v
}
