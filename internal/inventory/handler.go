package inventory

import (
	"fmt"
	"strconv"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/audit"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"
	"cafe-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateInventoryRequest struct {
	MenuItemID    string  `json:"menu_item_id" validate:"required"`
	CurrentStock  float64 `json:"current_stock" validate:"gte=0"`
	MinStockLevel float64 `json:"min_stock_level" validate:"gte=0"`
	MaxStockLevel float64 `json:"max_stock_level" validate:"gte=0"`
	CostPrice     float64 `json:"cost_price" validate:"gte=0"`
	SupplierID    *string `json:"supplier_id"`
	Unit          string  `json:"unit" validate:"omitempty,max=20"`
}

type InventoryResponse struct {
	ID            string  `json:"id"`
	MenuItemID    string  `json:"menu_item_id"`
	MenuItemName  string  `json:"menu_item_name"`
	CurrentStock  float64 `json:"current_stock"`
	MinStockLevel float64 `json:"min_stock_level"`
	MaxStockLevel float64 `json:"max_stock_level"`
	CostPrice     float64 `json:"cost_price"`
	SupplierID    *string `json:"supplier_id"`
	Unit          string  `json:"unit"`
	CreatedAt     string  `json:"created_at"`
}

func toResponse(item models.InventoryItem) InventoryResponse {
	resp := InventoryResponse{
		ID:            item.ID,
		MenuItemID:    item.MenuItemID,
		CurrentStock:  item.CurrentStock,
		MinStockLevel: item.MinStockLevel,
		MaxStockLevel: item.MaxStockLevel,
		CostPrice:     item.CostPrice,
		SupplierID:    item.SupplierID,
		Unit:          item.Unit,
		CreatedAt:     item.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if item.MenuItem != nil {
		resp.MenuItemName = item.MenuItem.Name
	}
	return resp
}

// GET /api/inventory
func ListInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		if err := database.DB.Preload("MenuItem").Order("created_at ASC").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list inventory")
		}

		resp := make([]InventoryResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, toResponse(item))
		}
		return c.JSON(resp)
	}
}

// GET /api/inventory/low-stock
func LowStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		err := database.DB.Preload("MenuItem").
			Where("current_stock <= min_stock_level").
			Order("current_stock ASC").
			Find(&items).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list low stock items")
		}

		resp := make([]InventoryResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, toResponse(item))
		}
		return c.JSON(resp)
	}
}

// GET /api/inventory/:id
func GetInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.InventoryItem
		if err := database.DB.Preload("MenuItem").First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("inventory record not found")
		}
		return c.JSON(toResponse(item))
	}
}

// POST /api/inventory
func CreateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		var menuItem models.MenuItem
		if err := database.DB.First(&menuItem, "id = ?", body.MenuItemID).Error; err != nil {
			return apperrors.NotFound("menu item not found")
		}

		var count int64
		database.DB.Model(&models.InventoryItem{}).Where("menu_item_id = ?", body.MenuItemID).Count(&count)
		if count > 0 {
			return apperrors.Validation("inventory already exists for this menu item")
		}

		unit := body.Unit
		if unit == "" {
			unit = "units"
		}

		item := models.InventoryItem{
			MenuItemID:    body.MenuItemID,
			CurrentStock:  body.CurrentStock,
			MinStockLevel: body.MinStockLevel,
			MaxStockLevel: body.MaxStockLevel,
			CostPrice:     body.CostPrice,
			SupplierID:    body.SupplierID,
			Unit:          unit,
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create inventory record")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "inventory",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Inventory created for %s: %.2f %s", menuItem.Name, item.CurrentStock, item.Unit),
			After:       item,
		})

		item.MenuItem = &menuItem
		return c.Status(fiber.StatusCreated).JSON(toResponse(item))
	}
}

// GET /api/inventory/:id/history
func HistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return apperrors.NotFound("inventory record not found")
		}

		var transactions []models.StockTransaction
		err := database.DB.Where("inventory_id = ?", id).
			Order("created_at DESC").
			Find(&transactions).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load transaction history")
		}

		return c.JSON(transactions)
	}
}

// GET /api/stock-transactions?limit=
func ListStockTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
				limit = n
			}
		}

		var transactions []models.StockTransaction
		err := database.DB.Order("created_at DESC").Limit(limit).Find(&transactions).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list stock transactions")
		}

		return c.JSON(transactions)
	}
}

type AdjustStockRequest struct {
	TransactionType string  `json:"transaction_type" validate:"required,oneof=restock waste adjustment"`
	Quantity        float64 `json:"quantity" validate:"gte=0"`
	Notes           string  `json:"notes" validate:"max=500"`
}

type AdjustStockResponse struct {
	Inventory   InventoryResponse       `json:"inventory"`
	Transaction models.StockTransaction `json:"transaction"`
}

// POST /api/inventory/:id/adjust
//
// The read-modify-write plus the ledger append run in one transaction with a
// row lock, so concurrent adjustments serialize instead of losing updates.
func AdjustStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body AdjustStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		userID, userName := auth.CurrentActor(c)

		var item models.InventoryItem
		var transaction models.StockTransaction

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&item, "id = ?", id).Error; err != nil {
				return apperrors.NotFound("inventory record not found")
			}

			result, err := Apply(item.CurrentStock, models.StockTransactionType(body.TransactionType), body.Quantity)
			if err != nil {
				return err
			}

			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", item.ID).
				Update("current_stock", result.NewStock).Error; err != nil {
				return err
			}
			item.CurrentStock = result.NewStock

			transaction = models.StockTransaction{
				InventoryID:   item.ID,
				Type:          models.StockTransactionType(body.TransactionType),
				Quantity:      body.Quantity,
				PreviousStock: result.PreviousStock,
				NewStock:      result.NewStock,
				Notes:         body.Notes,
				CreatedBy:     userName,
			}
			return tx.Create(&transaction).Error
		})
		if txErr != nil {
			if appErr, ok := txErr.(*apperrors.Error); ok {
				return appErr
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not adjust stock")
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_transaction",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Stock %s: %.2f -> %.2f (%s)", body.TransactionType, transaction.PreviousStock, transaction.NewStock, body.Notes),
			After:       transaction,
		})

		// reload with the menu item name for the response
		database.DB.Preload("MenuItem").First(&item, "id = ?", item.ID)

		return c.JSON(AdjustStockResponse{Inventory: toResponse(item), Transaction: transaction})
	}
}
