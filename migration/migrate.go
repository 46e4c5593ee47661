package migration

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Warehouse{},
		&models.SkuInfo{},
		&models.Inventory{},
		&models.ActionLog{},
		&models.Shipment{},
		&models.Message{},
	)
}
