package inventory

import (
	"testing"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/models"
)

func TestApplyRestock(t *testing.T) {
	got, err := Apply(10, models.StockRestock, 4)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.PreviousStock != 10 || got.NewStock != 14 || got.Delta != 4 {
		t.Fatalf("restock result = %+v, want 10 -> 14", got)
	}
}

func TestApplyWasteClampsAtZero(t *testing.T) {
	got, err := Apply(5, models.StockWaste, 8)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.PreviousStock != 5 || got.NewStock != 0 {
		t.Fatalf("waste result = %+v, want 5 -> 0", got)
	}
	if got.Delta != -5 {
		t.Fatalf("delta = %v, want -5 after clamping", got.Delta)
	}
}

func TestApplyWasteWithinStock(t *testing.T) {
	got, err := Apply(5, models.StockWaste, 2)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.NewStock != 3 || got.Delta != -2 {
		t.Fatalf("waste result = %+v, want 5 -> 3", got)
	}
}

func TestApplyAdjustmentIsAbsolute(t *testing.T) {
	got, err := Apply(12, models.StockAdjustment, 7)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.NewStock != 7 || got.Delta != -5 {
		t.Fatalf("adjustment result = %+v, want 12 -> 7", got)
	}

	// an absolute set to zero is a valid correction
	got, err = Apply(12, models.StockAdjustment, 0)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.NewStock != 0 {
		t.Fatalf("adjustment to zero produced %+v", got)
	}
}

func TestApplyRejectsBadInput(t *testing.T) {
	if _, err := Apply(10, models.StockRestock, -1); err == nil {
		t.Fatalf("expected error for negative quantity")
	}
	if _, err := Apply(10, models.StockRestock, 0); err == nil {
		t.Fatalf("expected error for zero restock")
	}
	if _, err := Apply(10, models.StockWaste, 0); err == nil {
		t.Fatalf("expected error for zero waste")
	}

	_, err := Apply(10, models.StockTransactionType("donate"), 1)
	if err == nil {
		t.Fatalf("expected error for unknown transaction type")
	}
	appErr, ok := err.(*apperrors.Error)
	if !ok || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
