package billing

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/config"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"
	"cafe-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BillItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	// Price is the unit price snapshotted client-side at add-time.
	Price     float64                `json:"price" validate:"gte=0"`
	Quantity  int                    `json:"quantity" validate:"gte=1"`
	Modifiers []AppliedModifierInput `json:"modifiers" validate:"dive"`
}

type AppliedModifierInput struct {
	ModifierName    string  `json:"modifier_name" validate:"required,max=100"`
	OptionName      string  `json:"option_name" validate:"required,max=100"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

type CreateBillRequest struct {
	Items           []BillItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountPercent float64           `json:"discount_percent"`
	TaxPercent      float64           `json:"tax_percent"`
	CustomerName    string            `json:"customer_name" validate:"max=100"`
	TableNumber     string            `json:"table_number" validate:"max=20"`
	NIF             string            `json:"nif" validate:"max=20"`
	Currency        string            `json:"currency" validate:"omitempty,len=3,alpha"`
}

// POST /api/bills
func CreateBillHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBillRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		currency := strings.ToUpper(body.Currency)
		if currency == "" {
			currency = cfg.DefaultCurrency
		}

		lines := make([]Line, 0, len(body.Items))
		for _, it := range body.Items {
			mods := make([]LineModifier, 0, len(it.Modifiers))
			for _, m := range it.Modifiers {
				mods = append(mods, LineModifier{
					ModifierName:    m.ModifierName,
					OptionName:      m.OptionName,
					PriceAdjustment: m.PriceAdjustment,
				})
			}
			lines = append(lines, Line{
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				UnitPrice:  it.Price,
				Quantity:   it.Quantity,
				Modifiers:  mods,
			})
		}

		// All validation happens before the transaction opens, so no
		// partial bill is ever stored.
		totals, err := Calculate(lines, body.DiscountPercent, body.TaxPercent)
		if err != nil {
			return err
		}

		var bill models.Bill
		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			number, err := NextBillNumber(tx)
			if err != nil {
				return err
			}

			items := make([]models.BillItem, 0, len(body.Items))
			for _, it := range body.Items {
				applied := make([]models.AppliedModifier, 0, len(it.Modifiers))
				for _, m := range it.Modifiers {
					applied = append(applied, models.AppliedModifier{
						ModifierName:    m.ModifierName,
						OptionName:      m.OptionName,
						PriceAdjustment: m.PriceAdjustment,
					})
				}
				modsJSON, err := json.Marshal(applied)
				if err != nil {
					return err
				}
				items = append(items, models.BillItem{
					MenuItemID: it.MenuItemID,
					Name:       it.Name,
					UnitPrice:  it.Price,
					Quantity:   it.Quantity,
					Modifiers:  modsJSON,
				})
			}

			bill = models.Bill{
				BillNumber:      number,
				Items:           items,
				Subtotal:        totals.Subtotal,
				DiscountPercent: body.DiscountPercent,
				DiscountAmount:  totals.DiscountAmount,
				TaxPercent:      body.TaxPercent,
				TaxAmount:       totals.TaxAmount,
				Total:           totals.Total,
				Currency:        currency,
				CustomerName:    body.CustomerName,
				TableNumber:     body.TableNumber,
				NIF:             body.NIF,
			}

			return tx.Create(&bill).Error
		})
		if txErr != nil {
			if isDuplicateKey(txErr) {
				return apperrors.Conflict("bill number collision, please retry")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not create bill")
		}

		return c.Status(fiber.StatusCreated).JSON(bill)
	}
}

// GET /api/bills?search=&start_date=&end_date=&limit=
func ListBillsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 100
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
				limit = n
			}
		}

		query := database.DB.Preload("Items").Order("created_at DESC").Limit(limit)

		if s := c.Query("search"); s != "" {
			pattern := "%" + s + "%"
			query = query.Where(
				"customer_name ILIKE ? OR nif ILIKE ? OR CAST(bill_number AS TEXT) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		if from := c.Query("start_date"); from != "" {
			d, err := time.Parse("2006-01-02", from)
			if err != nil {
				return apperrors.Validation("start_date must be formatted YYYY-MM-DD")
			}
			query = query.Where("created_at >= ?", d)
		}
		if to := c.Query("end_date"); to != "" {
			d, err := time.Parse("2006-01-02", to)
			if err != nil {
				return apperrors.Validation("end_date must be formatted YYYY-MM-DD")
			}
			query = query.Where("created_at < ?", d.AddDate(0, 0, 1))
		}

		var bills []models.Bill
		if err := query.Find(&bills).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list bills")
		}

		return c.JSON(bills)
	}
}

// GET /api/bills/:id
func GetBillHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var bill models.Bill
		if err := database.DB.Preload("Items").First(&bill, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("bill not found")
		}
		return c.JSON(bill)
	}
}
