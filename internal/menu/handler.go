package menu

import (
	"fmt"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/audit"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"
	"cafe-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"max=500"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=500"`
	Available   *bool   `json:"available"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=500"`
	Available   *bool    `json:"available"`
}

// GET /api/menu?category=&available=
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("category ASC, name ASC")

		if cat := c.Query("category"); cat != "" {
			query = query.Where("category = ?", cat)
		}
		if av := c.Query("available"); av == "true" {
			query = query.Where("available = ?", true)
		}

		var items []models.MenuItem
		if err := query.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list menu items")
		}

		return c.JSON(items)
	}
}

// GET /api/menu/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Categories)
	}
}

// GET /api/menu/:id
func GetMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("menu item not found")
		}
		return c.JSON(item)
	}
}

// POST /api/menu
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}
		if !IsValidCategory(body.Category) {
			return apperrors.Validation(fmt.Sprintf("unknown category %q", body.Category))
		}

		item := models.MenuItem{
			Name:        body.Name,
			Price:       body.Price,
			Category:    body.Category,
			Description: body.Description,
			ImageURL:    body.ImageURL,
			Available:   true,
		}
		if body.Available != nil {
			item.Available = *body.Available
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create menu item")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Menu item created: %s (%.2f)", item.Name, item.Price),
			After:       item,
		})

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/menu/:id
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("menu item not found")
		}

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}
		if body.Category != nil && !IsValidCategory(*body.Category) {
			return apperrors.Validation(fmt.Sprintf("unknown category %q", *body.Category))
		}

		before := item

		if body.Name != nil {
			item.Name = *body.Name
		}
		if body.Price != nil {
			item.Price = *body.Price
		}
		if body.Category != nil {
			item.Category = *body.Category
		}
		if body.Description != nil {
			item.Description = *body.Description
		}
		if body.ImageURL != nil {
			item.ImageURL = *body.ImageURL
		}
		if body.Available != nil {
			item.Available = *body.Available
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update menu item")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Menu item updated: %s", item.Name),
			Before:      before,
			After:       item,
		})

		return c.JSON(item)
	}
}

// DELETE /api/menu/:id
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("menu item not found")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete menu item")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Menu item deleted: %s", item.Name),
			Before:      item,
		})

		return c.JSON(fiber.Map{"message": "Item deleted successfully"})
	}
}
