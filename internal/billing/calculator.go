package billing

import (
	"cafe-backend/internal/apperrors"

	"github.com/shopspring/decimal"
)

// LineModifier is a modifier choice applied to one order line. The price
// adjustment is added to the unit price before quantity is applied.
type LineModifier struct {
	ModifierName    string
	OptionName      string
	PriceAdjustment float64
}

// Line is one order line with the price snapshotted at add-time.
type Line struct {
	MenuItemID string
	Name       string
	UnitPrice  float64
	Quantity   int
	Modifiers  []LineModifier
}

// Totals holds the derived money fields of a bill, rounded to 2 decimal
// places. They are computed once at generation time and frozen; the invariant
// Total = Subtotal - DiscountAmount + TaxAmount holds exactly over the
// rounded values because TaxableAmount and Total are derived from the already
// rounded operands.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxableAmount  float64
	TaxAmount      float64
	Total          float64
}

var hundred = decimal.NewFromInt(100)

// Calculate prices an order. Percentages outside [0,100] are rejected rather
// than clamped; client-side clamping is not trusted.
func Calculate(lines []Line, discountPercent, taxPercent float64) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, apperrors.Validation("cannot generate a bill with zero items")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return Totals{}, apperrors.Validation("discount_percent must be between 0 and 100")
	}
	if taxPercent < 0 || taxPercent > 100 {
		return Totals{}, apperrors.Validation("tax_percent must be between 0 and 100")
	}

	subtotal := decimal.Zero
	for _, ln := range lines {
		if ln.Quantity < 1 {
			return Totals{}, apperrors.Validation("line quantity must be at least 1")
		}
		if ln.UnitPrice < 0 {
			return Totals{}, apperrors.Validation("line price cannot be negative")
		}

		unit := decimal.NewFromFloat(ln.UnitPrice)
		for _, m := range ln.Modifiers {
			unit = unit.Add(decimal.NewFromFloat(m.PriceAdjustment))
		}
		if unit.IsNegative() {
			return Totals{}, apperrors.Validation("modifiers cannot drive a line price below zero")
		}

		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}

	subtotal = subtotal.Round(2)
	discount := subtotal.Mul(decimal.NewFromFloat(discountPercent)).Div(hundred).Round(2)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(decimal.NewFromFloat(taxPercent)).Div(hundred).Round(2)
	total := taxable.Add(tax)

	return Totals{
		Subtotal:       subtotal.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		TaxableAmount:  taxable.InexactFloat64(),
		TaxAmount:      tax.InexactFloat64(),
		Total:          total.InexactFloat64(),
	}, nil
}
