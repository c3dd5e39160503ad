package reports

import (
	"sort"
	"time"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/models"

	"github.com/shopspring/decimal"
)

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Summary struct {
	TotalBills     int       `json:"total_bills"`
	TotalRevenue   float64   `json:"total_revenue"`
	TotalItemsSold int       `json:"total_items_sold"`
	AvgBillValue   float64   `json:"avg_bill_value"`
	TopItems       []TopItem `json:"top_items"`
	Currency       string    `json:"currency"`
}

type DailyPoint struct {
	Date      string  `json:"date"`
	BillCount int     `json:"bill_count"`
	Revenue   float64 `json:"revenue"`
}

// Summarize aggregates a set of bills into summary statistics and a top-N
// item ranking. Zero bills yield a zero-valued summary, never an error. Bills
// in different currencies cannot be summed into one revenue figure and are
// rejected instead.
func Summarize(bills []models.Bill, topN int) (Summary, error) {
	summary := Summary{TopItems: []TopItem{}}
	if len(bills) == 0 {
		return summary, nil
	}

	currency := bills[0].Currency
	for _, b := range bills {
		if b.Currency != currency {
			return Summary{}, apperrors.Validation("cannot aggregate bills with mixed currencies, filter by currency")
		}
	}
	summary.Currency = currency

	type itemAgg struct {
		quantity int
		revenue  decimal.Decimal
	}

	revenue := decimal.Zero
	itemsSold := 0
	byName := make(map[string]*itemAgg)

	for _, b := range bills {
		revenue = revenue.Add(decimal.NewFromFloat(b.Total))
		for _, line := range b.Items {
			itemsSold += line.Quantity

			agg, ok := byName[line.Name]
			if !ok {
				agg = &itemAgg{}
				byName[line.Name] = agg
			}
			agg.quantity += line.Quantity
			lineRevenue := decimal.NewFromFloat(line.UnitPrice).
				Mul(decimal.NewFromInt(int64(line.Quantity)))
			agg.revenue = agg.revenue.Add(lineRevenue)
		}
	}

	summary.TotalBills = len(bills)
	summary.TotalRevenue = revenue.Round(2).InexactFloat64()
	summary.TotalItemsSold = itemsSold
	summary.AvgBillValue = revenue.
		Div(decimal.NewFromInt(int64(len(bills)))).
		Round(2).InexactFloat64()

	ranked := make([]TopItem, 0, len(byName))
	for name, agg := range byName {
		ranked = append(ranked, TopItem{
			Name:     name,
			Quantity: agg.quantity,
			Revenue:  agg.revenue.Round(2).InexactFloat64(),
		})
	}
	// quantity descending, ties broken by name for a deterministic ranking
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	summary.TopItems = ranked

	return summary, nil
}

// DailyBreakdown buckets bills by calendar day over [start, end] inclusive.
// Quiet days appear with explicit zeros so chart consumers never see gaps.
// Days are taken in the window's location; the driver may hand back
// timestamps in a different zone.
func DailyBreakdown(bills []models.Bill, start, end time.Time) []DailyPoint {
	type dayAgg struct {
		count   int
		revenue decimal.Decimal
	}

	byDay := make(map[string]*dayAgg)
	for _, b := range bills {
		key := b.CreatedAt.In(start.Location()).Format("2006-01-02")
		agg, ok := byDay[key]
		if !ok {
			agg = &dayAgg{}
			byDay[key] = agg
		}
		agg.count++
		agg.revenue = agg.revenue.Add(decimal.NewFromFloat(b.Total))
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	var points []DailyPoint
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		point := DailyPoint{Date: key}
		if agg, ok := byDay[key]; ok {
			point.BillCount = agg.count
			point.Revenue = agg.revenue.Round(2).InexactFloat64()
		}
		points = append(points, point)
	}
	return points
}
