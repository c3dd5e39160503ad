package modifier

import (
	"encoding/json"
	"fmt"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/audit"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"
	"cafe-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type OptionPayload struct {
	Name            string  `json:"name" validate:"required,max=100"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

type ModifierRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	SelectionType string          `json:"selection_type" validate:"required,oneof=single multiple"`
	Required      bool            `json:"required"`
	Options       []OptionPayload `json:"options" validate:"required,min=1,dive"`
}

type ModifierResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	SelectionType string                  `json:"selection_type"`
	Required      bool                    `json:"required"`
	Options       []models.ModifierOption `json:"options"`
}

func toResponse(m models.Modifier) ModifierResponse {
	var opts []models.ModifierOption
	_ = json.Unmarshal(m.Options, &opts)
	return ModifierResponse{
		ID:            m.ID,
		Name:          m.Name,
		SelectionType: string(m.SelectionType),
		Required:      m.Required,
		Options:       opts,
	}
}

// GET /api/modifiers
func ListModifiersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var modifiers []models.Modifier
		if err := database.DB.Order("name ASC").Find(&modifiers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list modifiers")
		}

		resp := make([]ModifierResponse, 0, len(modifiers))
		for _, m := range modifiers {
			resp = append(resp, toResponse(m))
		}
		return c.JSON(resp)
	}
}

// POST /api/modifiers
func CreateModifierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ModifierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.Modifier{}).Where("name = ?", body.Name).Count(&count)
		if count > 0 {
			return apperrors.Conflict(fmt.Sprintf("modifier %q already exists", body.Name))
		}

		opts := make([]models.ModifierOption, 0, len(body.Options))
		for _, o := range body.Options {
			opts = append(opts, models.ModifierOption{Name: o.Name, PriceAdjustment: o.PriceAdjustment})
		}
		optsJSON, err := json.Marshal(opts)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not encode options")
		}

		mod := models.Modifier{
			Name:          body.Name,
			SelectionType: models.ModifierSelectionType(body.SelectionType),
			Required:      body.Required,
			Options:       optsJSON,
		}

		if err := database.DB.Create(&mod).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create modifier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "modifier",
			EntityID:    mod.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Modifier created: %s (%d options)", mod.Name, len(opts)),
			After:       mod,
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(mod))
	}
}

// PUT /api/modifiers/:id
func UpdateModifierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var mod models.Modifier
		if err := database.DB.First(&mod, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("modifier not found")
		}

		var body ModifierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		before := mod

		opts := make([]models.ModifierOption, 0, len(body.Options))
		for _, o := range body.Options {
			opts = append(opts, models.ModifierOption{Name: o.Name, PriceAdjustment: o.PriceAdjustment})
		}
		optsJSON, err := json.Marshal(opts)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not encode options")
		}

		mod.Name = body.Name
		mod.SelectionType = models.ModifierSelectionType(body.SelectionType)
		mod.Required = body.Required
		mod.Options = optsJSON

		if err := database.DB.Save(&mod).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update modifier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "modifier",
			EntityID:    mod.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Modifier updated: %s", mod.Name),
			Before:      before,
			After:       mod,
		})

		return c.JSON(toResponse(mod))
	}
}

// DELETE /api/modifiers/:id
func DeleteModifierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var mod models.Modifier
		if err := database.DB.First(&mod, "id = ?", c.Params("id")).Error; err != nil {
			return apperrors.NotFound("modifier not found")
		}

		if err := database.DB.Delete(&mod).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete modifier")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "modifier",
			EntityID:    mod.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Modifier deleted: %s", mod.Name),
			Before:      mod,
		})

		return c.JSON(fiber.Map{"message": "Modifier deleted successfully"})
	}
}
