package reports

import (
	"testing"
	"time"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/models"
)

func bill(total float64, created time.Time, items ...models.BillItem) models.Bill {
	return models.Bill{
		Total:     total,
		Currency:  "EUR",
		CreatedAt: created,
		Items:     items,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := Summarize(nil, 5)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.TotalBills != 0 || got.TotalRevenue != 0 || got.TotalItemsSold != 0 {
		t.Fatalf("expected zero counts, got %+v", got)
	}
	if got.AvgBillValue != 0 {
		t.Fatalf("avg of zero bills = %v, want 0", got.AvgBillValue)
	}
	if got.TopItems == nil || len(got.TopItems) != 0 {
		t.Fatalf("top items should be an empty slice, got %v", got.TopItems)
	}
}

func TestSummarizeTotalsAndAverage(t *testing.T) {
	now := time.Now()
	bills := []models.Bill{
		bill(10.00, now, models.BillItem{Name: "Latte", UnitPrice: 5.00, Quantity: 2}),
		bill(5.50, now, models.BillItem{Name: "Scone", UnitPrice: 2.75, Quantity: 2}),
	}

	got, err := Summarize(bills, 10)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got.TotalBills != 2 {
		t.Fatalf("total bills = %d, want 2", got.TotalBills)
	}
	if got.TotalRevenue != 15.50 {
		t.Fatalf("revenue = %v, want 15.50", got.TotalRevenue)
	}
	if got.TotalItemsSold != 4 {
		t.Fatalf("items sold = %d, want 4", got.TotalItemsSold)
	}
	if got.AvgBillValue != 7.75 {
		t.Fatalf("avg = %v, want 7.75", got.AvgBillValue)
	}
	if got.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", got.Currency)
	}
}

func TestSummarizeTopItemsRanking(t *testing.T) {
	now := time.Now()
	bills := []models.Bill{
		bill(0, now,
			models.BillItem{Name: "Latte", UnitPrice: 4.00, Quantity: 3},
			models.BillItem{Name: "Espresso", UnitPrice: 1.50, Quantity: 5},
		),
		bill(0, now,
			models.BillItem{Name: "Latte", UnitPrice: 4.00, Quantity: 2},
			// ties Latte on quantity, name breaks the tie
			models.BillItem{Name: "Americano", UnitPrice: 2.00, Quantity: 5},
		),
	}

	got, err := Summarize(bills, 10)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	wantOrder := []string{"Americano", "Espresso", "Latte"}
	if len(got.TopItems) != len(wantOrder) {
		t.Fatalf("got %d top items, want %d", len(got.TopItems), len(wantOrder))
	}
	for i, name := range wantOrder {
		if got.TopItems[i].Name != name {
			t.Fatalf("rank %d = %q, want %q", i, got.TopItems[i].Name, name)
		}
	}

	if got.TopItems[2].Quantity != 5 {
		t.Fatalf("Latte quantity = %d, want 5", got.TopItems[2].Quantity)
	}
	if got.TopItems[2].Revenue != 20.00 {
		t.Fatalf("Latte revenue = %v, want 20.00", got.TopItems[2].Revenue)
	}

	// topN truncation
	truncated, err := Summarize(bills, 2)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if len(truncated.TopItems) != 2 {
		t.Fatalf("got %d top items, want 2", len(truncated.TopItems))
	}
}

func TestSummarizeRejectsMixedCurrencies(t *testing.T) {
	now := time.Now()
	bills := []models.Bill{
		{Total: 10, Currency: "EUR", CreatedAt: now},
		{Total: 10, Currency: "USD", CreatedAt: now},
	}

	_, err := Summarize(bills, 5)
	if err == nil {
		t.Fatalf("expected error for mixed currencies")
	}
	appErr, ok := err.(*apperrors.Error)
	if !ok || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDailyBreakdownFillsQuietDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	bills := []models.Bill{
		bill(12.00, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)),
		bill(8.00, time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)),
		bill(5.00, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)),
	}

	points := DailyBreakdown(bills, start, end)
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}

	if points[0].Date != "2026-03-01" || points[0].BillCount != 2 || points[0].Revenue != 20.00 {
		t.Fatalf("day 1 = %+v, want 2 bills / 20.00", points[0])
	}
	for _, i := range []int{1, 2, 4} {
		if points[i].BillCount != 0 || points[i].Revenue != 0 {
			t.Fatalf("quiet day %s should be explicit zeros, got %+v", points[i].Date, points[i])
		}
	}
	if points[3].Date != "2026-03-04" || points[3].BillCount != 1 {
		t.Fatalf("day 4 = %+v, want 1 bill", points[3])
	}
}

func TestDailyBreakdownBucketsInWindowLocation(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 00:30 on Mar 2 in UTC+2 is 22:30 on Mar 1 in UTC
	ahead := time.FixedZone("UTC+2", 2*3600)
	bills := []models.Bill{
		bill(9.00, time.Date(2026, 3, 2, 0, 30, 0, 0, ahead)),
	}

	points := DailyBreakdown(bills, start, end)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].BillCount != 1 || points[0].Revenue != 9.00 {
		t.Fatalf("Mar 1 = %+v, want the late-night bill", points[0])
	}
	if points[1].BillCount != 0 {
		t.Fatalf("Mar 2 = %+v, want no bills", points[1])
	}
}

func TestDailyBreakdownSingleDay(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	points := DailyBreakdown(nil, day, day)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Date != "2026-03-01" {
		t.Fatalf("date = %q, want 2026-03-01", points[0].Date)
	}
}
