package theme

import (
	"cafe-backend/internal/audit"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/database"
	"cafe-backend/internal/models"
	"cafe-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UpdateThemeRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	PrimaryColor    string `json:"primary_color" validate:"required,hexcolor"`
	AccentColor     string `json:"accent_color" validate:"required,hexcolor"`
	BackgroundColor string `json:"background_color" validate:"required,hexcolor"`
	CardColor       string `json:"card_color" validate:"required,hexcolor"`
	TextColor       string `json:"text_color" validate:"required,hexcolor"`
	MutedColor      string `json:"muted_color" validate:"required,hexcolor"`
	BorderColor     string `json:"border_color" validate:"required,hexcolor"`
	SuccessColor    string `json:"success_color" validate:"required,hexcolor"`
	ErrorColor      string `json:"error_color" validate:"required,hexcolor"`
}

func currentTheme() models.ThemeConfig {
	var theme models.ThemeConfig
	if err := database.DB.First(&theme, "id = ?", "default").Error; err != nil {
		return database.DefaultTheme()
	}
	return theme
}

// GET /api/config/theme
func GetThemeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(currentTheme())
	}
}

// PUT /api/config/theme
func UpdateThemeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateThemeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return err
		}

		before := currentTheme()

		theme := models.ThemeConfig{
			ID:              "default",
			Name:            body.Name,
			PrimaryColor:    body.PrimaryColor,
			AccentColor:     body.AccentColor,
			BackgroundColor: body.BackgroundColor,
			CardColor:       body.CardColor,
			TextColor:       body.TextColor,
			MutedColor:      body.MutedColor,
			BorderColor:     body.BorderColor,
			SuccessColor:    body.SuccessColor,
			ErrorColor:      body.ErrorColor,
		}

		if err := database.DB.Save(&theme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save theme")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "theme",
			EntityID:    theme.ID,
			Action:      models.AuditActionUpdate,
			Description: "Theme updated: " + theme.Name,
			Before:      before,
			After:       theme,
		})

		return c.JSON(theme)
	}
}

// POST /api/config/theme/reset
func ResetThemeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := currentTheme()
		theme := database.DefaultTheme()

		if err := database.DB.Save(&theme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not reset theme")
		}

		userID, userName := auth.CurrentActor(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "theme",
			EntityID:    theme.ID,
			Action:      models.AuditActionUpdate,
			Description: "Theme reset to default",
			Before:      before,
			After:       theme,
		})

		return c.JSON(theme)
	}
}
