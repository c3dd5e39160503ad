package supplier

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

type SupplierRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	ContactName string `json:"contact_name" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Address     string `json:"address" validate:"max=255"`
	Notes       string `json:"notes" validate:"max=500"`
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := database.DB.Order("name ASC").Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list suppliers")
		}
		return c.JSON(suppliers)
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		sup := models.Supplier{
			Name:        body.Name,
			ContactName: body.ContactName,
			Email:       body.Email,
			Phone:       body.Phone,
			Address:     body.Address,
			Notes:       body.Notes,
		}

		if err := database.DB.Create(&sup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create supplier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "supplier",
			EntityID:    sup.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Supplier created: %s", sup.Name),
			After:       sup,
		})

		return c.Status(fiber.StatusCreated).JSON(sup)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sup models.Supplier
		if err := database.DB.First(&sup, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("supplier not found")
		}

		var body SupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		before := sup

		sup.Name = body.Name
		sup.ContactName = body.ContactName
		sup.Email = body.Email
		sup.Phone = body.Phone
		sup.Address = body.Address
		sup.Notes = body.Notes

		if err := database.DB.Save(&sup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update supplier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "supplier",
			EntityID:    sup.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Supplier updated: %s", sup.Name),
			Before:      before,
			After:       sup,
		})

		return c.JSON(sup)
	}
}

// DELETE /api/suppliers/:id
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sup models.Supplier
		if err := database.DB.First(&sup, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("supplier not found")
		}

		if err := database.DB.Delete(&sup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete supplier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "supplier",
			EntityID:    sup.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Supplier deleted: %s", sup.Name),
			Before:      sup,
		})

		return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
	}
}
