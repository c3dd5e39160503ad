package database

import (
	"encoding/json"

	"cafe-backend/internal/config"
	"cafe-backend/internal/logging"
	"cafe-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var defaultMenuItems = []models.MenuItem{
	{Name: "Espresso", Price: 3.50, Category: "Coffee", Description: "Rich & bold single shot"},
	{Name: "Americano", Price: 4.00, Category: "Coffee", Description: "Espresso with hot water"},
	{Name: "Cappuccino", Price: 4.50, Category: "Coffee", Description: "Espresso with steamed milk foam"},
	{Name: "Latte", Price: 5.00, Category: "Coffee", Description: "Espresso with creamy steamed milk"},
	{Name: "Mocha", Price: 5.50, Category: "Coffee", Description: "Espresso with chocolate & milk"},
	{Name: "Cold Brew", Price: 4.50, Category: "Coffee", Description: "Slow-steeped, smooth & refreshing"},
	{Name: "Green Tea", Price: 3.00, Category: "Tea", Description: "Classic Japanese green tea"},
	{Name: "Earl Grey", Price: 3.00, Category: "Tea", Description: "Black tea with bergamot"},
	{Name: "Chai Latte", Price: 4.50, Category: "Tea", Description: "Spiced tea with steamed milk"},
	{Name: "Matcha Latte", Price: 5.00, Category: "Tea", Description: "Premium matcha with milk"},
	{Name: "Croissant", Price: 3.50, Category: "Pastries", Description: "Buttery, flaky French classic"},
	{Name: "Chocolate Muffin", Price: 3.00, Category: "Pastries", Description: "Rich chocolate chip muffin"},
	{Name: "Blueberry Scone", Price: 3.50, Category: "Pastries", Description: "Fresh blueberry scone"},
	{Name: "Cinnamon Roll", Price: 4.00, Category: "Pastries", Description: "Warm cinnamon swirl"},
	{Name: "Avocado Toast", Price: 7.50, Category: "Snacks", Description: "Smashed avocado on sourdough"},
	{Name: "Grilled Cheese", Price: 6.00, Category: "Snacks", Description: "Classic melted cheese sandwich"},
	{Name: "Caesar Salad", Price: 8.00, Category: "Snacks", Description: "Crisp romaine with Caesar dressing"},
	{Name: "Orange Juice", Price: 4.00, Category: "Beverages", Description: "Fresh squeezed orange juice"},
	{Name: "Lemonade", Price: 3.50, Category: "Beverages", Description: "House-made lemonade"},
	{Name: "Sparkling Water", Price: 2.50, Category: "Beverages", Description: "Refreshing sparkling water"},
}

type seedModifier struct {
	Name          string
	SelectionType models.ModifierSelectionType
	Required      bool
	Options       []models.ModifierOption
}

var defaultModifiers = []seedModifier{
	{
		Name:          "Size",
		SelectionType: models.ModifierSelectionSingle,
		Options: []models.ModifierOption{
			{Name: "Small", PriceAdjustment: -0.50},
			{Name: "Regular", PriceAdjustment: 0},
			{Name: "Large", PriceAdjustment: 1.50},
		},
	},
	{
		Name:          "Cooking Preference",
		SelectionType: models.ModifierSelectionSingle,
		Options: []models.ModifierOption{
			{Name: "Rare", PriceAdjustment: 0},
			{Name: "Medium", PriceAdjustment: 0},
			{Name: "Well Done", PriceAdjustment: 0},
		},
	},
	{
		Name:          "Milk Option",
		SelectionType: models.ModifierSelectionSingle,
		Options: []models.ModifierOption{
			{Name: "Whole Milk", PriceAdjustment: 0},
			{Name: "Skimmed Milk", PriceAdjustment: 0},
			{Name: "Oat Milk", PriceAdjustment: 0.50},
			{Name: "Soy Milk", PriceAdjustment: 0.50},
		},
	},
	{
		Name:          "Extras",
		SelectionType: models.ModifierSelectionMultiple,
		Options: []models.ModifierOption{
			{Name: "Extra Shot", PriceAdjustment: 1.00},
			{Name: "Whipped Cream", PriceAdjustment: 0.50},
			{Name: "Caramel Syrup", PriceAdjustment: 0.50},
			{Name: "Vanilla Syrup", PriceAdjustment: 0.50},
		},
	},
}

// DefaultTheme is the palette the reset endpoint restores.
func DefaultTheme() models.ThemeConfig {
	return models.ThemeConfig{
		ID:              "default",
		Name:            "Espresso & Crema",
		PrimaryColor:    "#2C1A1D",
		AccentColor:     "#C08552",
		BackgroundColor: "#FAF6F2",
		CardColor:       "#FFFFFF",
		TextColor:       "#2C1A1D",
		MutedColor:      "#8A7968",
		BorderColor:     "#E8DFD5",
		SuccessColor:    "#3F6212",
		ErrorColor:      "#991B1B",
	}
}

// SeedDefaults populates empty tables on first start: the stock menu, the
// default modifiers, the default theme and the admin account.
func SeedDefaults(cfg *config.Config) {
	log := logging.L()

	var menuCount int64
	DB.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		for i := range defaultMenuItems {
			item := defaultMenuItems[i]
			item.Available = true
			if err := DB.Create(&item).Error; err != nil {
				log.WithError(err).Warn("failed to seed menu item")
			}
		}
		log.WithField("count", len(defaultMenuItems)).Info("seeded default menu items")
	}

	var modifierCount int64
	DB.Model(&models.Modifier{}).Count(&modifierCount)
	if modifierCount == 0 {
		for _, m := range defaultModifiers {
			opts, err := json.Marshal(m.Options)
			if err != nil {
				continue
			}
			mod := models.Modifier{
				Name:          m.Name,
				SelectionType: m.SelectionType,
				Required:      m.Required,
				Options:       opts,
			}
			if err := DB.Create(&mod).Error; err != nil {
				log.WithError(err).Warn("failed to seed modifier")
			}
		}
		log.Info("seeded default modifiers")
	}

	var themeCount int64
	DB.Model(&models.ThemeConfig{}).Count(&themeCount)
	if themeCount == 0 {
		theme := DefaultTheme()
		if err := DB.Create(&theme).Error; err != nil {
			log.WithError(err).Warn("failed to seed default theme")
		}
	}

	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		if cfg.AdminPassword == "" {
			log.Warn("ADMIN_PASSWORD not set, skipping admin account seed")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Warn("failed to hash admin password")
			return
		}
		admin := models.User{
			Name:         "Admin",
			Email:        cfg.AdminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.WithError(err).Warn("failed to seed admin account")
			return
		}
		log.WithField("email", admin.Email).Info("seeded admin account")
	}
}
