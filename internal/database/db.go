package database

import (
	"cafe-backend/internal/config"
	"cafe-backend/internal/logging"
	"cafe-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError maps driver unique violations onto gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logging.L().WithError(err).Fatal("could not connect to database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Modifier{},
		&models.Bill{},
		&models.BillItem{},
		&models.BillCounter{},
		&models.InventoryItem{},
		&models.StockTransaction{},
		&models.Supplier{},
		&models.ThemeConfig{},
		&models.AuditLog{},
	)
	if err != nil {
		logging.L().WithError(err).Fatal("auto migration failed")
	}

	logging.L().Info("database connected, migrations applied")
}
