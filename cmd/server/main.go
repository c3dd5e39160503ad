package main

import (
	"errors"
	"strings"

	"cafe-backend/internal/apperrors"
	"cafe-backend/internal/audit"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/billing"
	"cafe-backend/internal/config"
	"cafe-backend/internal/database"
	"cafe-backend/internal/inventory"
	"cafe-backend/internal/logging"
	"cafe-backend/internal/menu"
	"cafe-backend/internal/models"
	"cafe-backend/internal/modifier"
	"cafe-backend/internal/reports"
	"cafe-backend/internal/supplier"
	"cafe-backend/internal/theme"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func newApp(cfg *config.Config) *fiber.App {
	log := logging.L()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Status()).JSON(appErr)
			}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.WithError(err).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Cafe Bill Generator API"})
	})

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Public reads for the ordering screen
	api.Get("/menu", menu.ListMenuItemsHandler())
	api.Get("/menu/categories", menu.ListCategoriesHandler())
	api.Get("/menu/:id", menu.GetMenuItemHandler())
	api.Get("/modifiers", modifier.ListModifiersHandler())
	api.Get("/config/theme", theme.GetThemeHandler())

	// Authenticated staff
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Billing
	protected.Post("/bills", billing.CreateBillHandler(cfg))
	protected.Get("/bills", billing.ListBillsHandler())
	protected.Get("/bills/:id", billing.GetBillHandler())

	// Sales reports
	protected.Get("/reports/daily", reports.DailyReportHandler(cfg))
	protected.Get("/reports/range", reports.RangeReportHandler(cfg))

	// Supplier and inventory reads; day-to-day stock adjustments stay
	// staff-level, only catalog mutations need an admin
	protected.Get("/suppliers", supplier.ListSuppliersHandler())
	protected.Get("/inventory", inventory.ListInventoryHandler())
	protected.Get("/inventory/low-stock", inventory.LowStockHandler())
	protected.Get("/inventory/:id", inventory.GetInventoryHandler())
	protected.Post("/inventory/:id/adjust", inventory.AdjustStockHandler())
	protected.Get("/inventory/:id/history", inventory.HistoryHandler())
	protected.Get("/stock-transactions", inventory.ListStockTransactionsHandler())

	// Admin-only management
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/menu", menu.CreateMenuItemHandler())
	adminRoutes.Put("/menu/:id", menu.UpdateMenuItemHandler())
	adminRoutes.Delete("/menu/:id", menu.DeleteMenuItemHandler())

	adminRoutes.Post("/modifiers", modifier.CreateModifierHandler())
	adminRoutes.Put("/modifiers/:id", modifier.UpdateModifierHandler())
	adminRoutes.Delete("/modifiers/:id", modifier.DeleteModifierHandler())

	adminRoutes.Post("/suppliers", supplier.CreateSupplierHandler())
	adminRoutes.Put("/suppliers/:id", supplier.UpdateSupplierHandler())
	adminRoutes.Delete("/suppliers/:id", supplier.DeleteSupplierHandler())

	adminRoutes.Post("/inventory", inventory.CreateInventoryHandler())

	adminRoutes.Put("/config/theme", theme.UpdateThemeHandler())
	adminRoutes.Post("/config/theme/reset", theme.ResetThemeHandler())

	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	return app
}

func main() {
	_ = godotenv.Load()

	log := logging.L()
	cfg := config.Load()
	database.Init(cfg)
	database.SeedDefaults(cfg)

	app := newApp(cfg)

	log.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
