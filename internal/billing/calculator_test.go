package billing

import (
	"testing"

	"cafe-backend/internal/apperrors"
)

func TestCalculateDiscountThenTax(t *testing.T) {
	lines := []Line{
		{MenuItemID: "a", Name: "Cappuccino", UnitPrice: 2.50, Quantity: 3},
	}

	got, err := Calculate(lines, 10, 23)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if got.Subtotal != 7.50 {
		t.Fatalf("subtotal = %v, want 7.50", got.Subtotal)
	}
	if got.DiscountAmount != 0.75 {
		t.Fatalf("discount = %v, want 0.75", got.DiscountAmount)
	}
	if got.TaxableAmount != 6.75 {
		t.Fatalf("taxable = %v, want 6.75", got.TaxableAmount)
	}
	// 6.75 * 23% = 1.5525, rounds half away from zero to 1.55
	if got.TaxAmount != 1.55 {
		t.Fatalf("tax = %v, want 1.55", got.TaxAmount)
	}
	if got.Total != 8.30 {
		t.Fatalf("total = %v, want 8.30", got.Total)
	}
}

func TestCalculateModifiersRaiseUnitPrice(t *testing.T) {
	lines := []Line{
		{
			MenuItemID: "a",
			Name:       "Latte",
			UnitPrice:  4.00,
			Quantity:   1,
			Modifiers: []LineModifier{
				{ModifierName: "Size", OptionName: "Large", PriceAdjustment: 1.00},
				{ModifierName: "Milk Option", OptionName: "Oat Milk", PriceAdjustment: 0.50},
			},
		},
	}

	got, err := Calculate(lines, 0, 0)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if got.Subtotal != 5.50 {
		t.Fatalf("subtotal = %v, want 5.50", got.Subtotal)
	}
	if got.Total != got.Subtotal {
		t.Fatalf("zero discount and tax should leave total = subtotal, got %v", got.Total)
	}
}

func TestCalculateRejectsEmptyOrder(t *testing.T) {
	_, err := Calculate(nil, 0, 0)
	if err == nil {
		t.Fatalf("expected error for empty order")
	}
	appErr, ok := err.(*apperrors.Error)
	if !ok || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCalculateRejectsOutOfRangePercents(t *testing.T) {
	lines := []Line{{MenuItemID: "a", Name: "Espresso", UnitPrice: 1.50, Quantity: 1}}

	cases := []struct {
		name     string
		discount float64
		tax      float64
	}{
		{"negative discount", -1, 0},
		{"discount over 100", 101, 0},
		{"negative tax", 0, -0.5},
		{"tax over 100", 0, 100.01},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(lines, tc.discount, tc.tax)
			if err == nil {
				t.Fatalf("expected error for discount=%v tax=%v", tc.discount, tc.tax)
			}
			appErr, ok := err.(*apperrors.Error)
			if !ok || appErr.Kind != apperrors.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCalculateRejectsBadLines(t *testing.T) {
	if _, err := Calculate([]Line{{Name: "x", UnitPrice: 1, Quantity: 0}}, 0, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, err := Calculate([]Line{{Name: "x", UnitPrice: -1, Quantity: 1}}, 0, 0); err == nil {
		t.Fatalf("expected error for negative price")
	}

	discounted := []Line{{
		Name: "x", UnitPrice: 1.00, Quantity: 1,
		Modifiers: []LineModifier{{ModifierName: "Promo", OptionName: "Free", PriceAdjustment: -2.00}},
	}}
	if _, err := Calculate(discounted, 0, 0); err == nil {
		t.Fatalf("expected error when modifiers drive the line price negative")
	}
}

func TestCalculateBoundaryPercents(t *testing.T) {
	lines := []Line{{Name: "x", UnitPrice: 10.00, Quantity: 1}}

	got, err := Calculate(lines, 100, 0)
	if err != nil {
		t.Fatalf("discount of exactly 100 should be accepted: %v", err)
	}
	if got.Total != 0 {
		t.Fatalf("total with 100%% discount = %v, want 0", got.Total)
	}

	got, err = Calculate(lines, 0, 100)
	if err != nil {
		t.Fatalf("tax of exactly 100 should be accepted: %v", err)
	}
	if got.Total != 20.00 {
		t.Fatalf("total with 100%% tax = %v, want 20.00", got.Total)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	lines := []Line{
		{Name: "a", UnitPrice: 3.33, Quantity: 3},
		{Name: "b", UnitPrice: 0.10, Quantity: 7},
	}

	first, err := Calculate(lines, 12.5, 23)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Calculate(lines, 12.5, 23)
		if err != nil {
			t.Fatalf("Calculate returned error: %v", err)
		}
		if again != first {
			t.Fatalf("run %d produced %+v, want %+v", i, again, first)
		}
	}

	if first.Total != first.Subtotal-first.DiscountAmount+first.TaxAmount {
		t.Fatalf("total %v does not equal subtotal - discount + tax", first.Total)
	}
}
