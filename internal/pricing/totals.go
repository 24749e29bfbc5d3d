package pricing

import (
	"fmt"

	"cafe-pos/internal/model"

	"github.com/shopspring/decimal"
)

// KioskTaxRate is the flat sales tax applied to kiosk carts.
var KioskTaxRate = decimal.RequireFromString("0.08")

// Calculator sums line collections and applies a flat tax rate.
type Calculator struct {
	TaxRate decimal.Decimal
}

// NewCalculator creates a calculator with the given tax rate.
// A zero rate yields Total == Subtotal.
func NewCalculator(taxRate decimal.Decimal) Calculator {
	return Calculator{TaxRate: taxRate}
}

// Subtotal returns the sum of every line's extended price.
func Subtotal(lines []model.OrderLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(ExtendedPrice(l.UnitPrice, l.Quantity))
	}
	return sum
}

// Totals computes subtotal, tax and total. Tax is taken once over the whole
// subtotal, not per line.
func (c Calculator) Totals(lines []model.OrderLine) model.Totals {
	subtotal := Subtotal(lines)
	tax := subtotal.Mul(c.TaxRate)
	return model.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// RoundCents rounds an amount to two decimal places for display.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount with two decimals and an optional currency suffix.
func Format(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", d.StringFixed(2), currency)
}

// RoundTotals returns a copy of t with every amount rounded to cents.
func RoundTotals(t model.Totals) model.Totals {
	return model.Totals{
		Subtotal: RoundCents(t.Subtotal),
		Tax:      RoundCents(t.Tax),
		Total:    RoundCents(t.Total),
	}
}
