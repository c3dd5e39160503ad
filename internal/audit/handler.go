package audit

import (
	"strconv"

	"cafe-backend/internal/database"
	"cafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=&limit=
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 100
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
				limit = n
			}
		}

		query := database.DB.Order("created_at DESC").Limit(limit)
		if et := c.Query("entity_type"); et != "" {
			query = query.Where("entity_type = ?", et)
		}

		var logs []models.AuditLog
		if err := query.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list audit logs")
		}

		return c.JSON(logs)
	}
}
