// Package money centralizes monetary arithmetic for document totals.
//
// All amounts are rounded to 2 decimal places using half-up rounding
// (ties rounded away from zero). Computations go through decimals so that
// binary floating-point drift cannot shift a total by a cent.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round rounds d to 2 decimal places, half-up. This is the single rounding
// point for every monetary amount in the repository.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineTotal returns quantity * unitPrice * (1 - discountPct/100) rounded to
// 2 decimal places. Inputs are assumed pre-validated (quantity and unitPrice
// non-negative, discountPct in [0,100]); there is no failure mode here.
func LineTotal(quantity, unitPrice, discountPct float64) float64 {
	total := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
	if discountPct != 0 {
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discountPct).Div(hundred))
		if factor.IsNegative() {
			factor = decimal.Zero
		}
		total = total.Mul(factor)
	}
	f, _ := Round(total).Float64()
	return f
}

// Percentage returns amount * pct/100 rounded to 2 decimal places.
// Negative percentages are treated as zero.
func Percentage(amount, pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	d := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(pct)).Div(hundred)
	f, _ := Round(d).Float64()
	return f
}

// Sum returns the sum of values rounded to 2 decimal places.
// An empty input sums to 0.00.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := Round(total).Float64()
	return f
}
