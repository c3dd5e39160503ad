package inventory

import (
	"fmt"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/models"
)

// AdjustmentResult is what one stock adjustment did. Delta is the actual
// applied change, which for waste can be smaller than the requested quantity
// when the clamp at zero kicks in.
type AdjustmentResult struct {
	PreviousStock float64
	NewStock      float64
	Delta         float64
}

// Apply computes the stock level after one adjustment without touching
// storage. Waste clamps at zero instead of erroring; the ledger entry records
// the clamped outcome.
func Apply(currentStock float64, t models.StockTransactionType, quantity float64) (AdjustmentResult, error) {
	if quantity < 0 {
		return AdjustmentResult{}, apperrors.Validation("quantity cannot be negative")
	}

	result := AdjustmentResult{PreviousStock: currentStock}

	switch t {
	case models.StockRestock:
		if quantity == 0 {
			return AdjustmentResult{}, apperrors.Validation("restock quantity must be greater than zero")
		}
		result.NewStock = currentStock + quantity
	case models.StockWaste:
		if quantity == 0 {
			return AdjustmentResult{}, apperrors.Validation("waste quantity must be greater than zero")
		}
		result.NewStock = currentStock - quantity
		if result.NewStock < 0 {
			result.NewStock = 0
		}
	case models.StockAdjustment:
		// absolute set
		result.NewStock = quantity
	default:
		return AdjustmentResult{}, apperrors.Validation(fmt.Sprintf("unknown transaction type %q", t))
	}

	result.Delta = result.NewStock - result.PreviousStock
	return result, nil
}
