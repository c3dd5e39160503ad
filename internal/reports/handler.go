package reports

import (
	"strconv"
	"time"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/config"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DailyReportResponse struct {
	Date string `json:"date"`
	Summary
}

type RangeReportResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Summary
	DailyBreakdown []DailyPoint `json:"daily_breakdown"`
}

func topN(c *fiber.Ctx, cfg *config.Config) int {
	if v := c.Query("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			return n
		}
	}
	return cfg.ReportTopItems
}

func loadBills(start, end time.Time, currency string) ([]models.Bill, error) {
	query := database.DB.Preload("Items").
		Where("created_at >= ? AND created_at < ?", start, end)
	if currency != "" {
		query = query.Where("currency = ?", currency)
	}

	var bills []models.Bill
	if err := query.Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// GET /api/reports/daily?date=YYYY-MM-DD&currency=&top=
func DailyReportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		if dateStr == "" {
			dateStr = time.Now().Format("2006-01-02")
		}
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return apperrors.Validation("date must be formatted YYYY-MM-DD")
		}

		bills, err := loadBills(day, day.AddDate(0, 0, 1), c.Query("currency"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load bills")
		}

		summary, err := Summarize(bills, topN(c, cfg))
		if err != nil {
			return err
		}

		return c.JSON(DailyReportResponse{
			Date:    day.Format("2006-01-02"),
			Summary: summary,
		})
	}
}

// GET /api/reports/range?start_date=&end_date=&currency=&top=
func RangeReportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			return apperrors.Validation("start_date must be formatted YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil {
			return apperrors.Validation("end_date must be formatted YYYY-MM-DD")
		}
		if end.Before(start) {
			return apperrors.Validation("end_date cannot be before start_date")
		}

		bills, err := loadBills(start, end.AddDate(0, 0, 1), c.Query("currency"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load bills")
		}

		summary, err := Summarize(bills, topN(c, cfg))
		if err != nil {
			return err
		}

		return c.JSON(RangeReportResponse{
			StartDate:      start.Format("2006-01-02"),
			EndDate:        end.Format("2006-01-02"),
			Summary:        summary,
			DailyBreakdown: DailyBreakdown(bills, start, end),
		})
	}
}
