package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

// Known bad/test skus left behind by early data entry.
var JunkSkus = []string{
	"TEST", "ADFD", "ADAFD", "ADFFDF", "ADDFD",
	"BLACKWHITE", "BLACK-WHITE", "HOTPINK", "HOT-PINK", "RAINBOW",
}

type PurgeResult struct {
	Inventory int64 `json:"inventory"`
	Logs      int64 `json:"logs"`
	Catalog   int64 `json:"catalog"`
}

// PurgeJunkSkus deletes every inventory, log and catalog row referencing one
// of the listed skus. This is the only path in the system that deletes log
// rows.
func PurgeJunkSkus(db *gorm.DB, skus []string) (PurgeResult, error) {
	var result PurgeResult

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("sku IN ?", skus).Delete(&models.Inventory{})
		if res.Error != nil {
			return res.Error
		}
		result.Inventory = res.RowsAffected

		res = tx.Where("sku IN ?", skus).Delete(&models.ActionLog{})
		if res.Error != nil {
			return res.Error
		}
		result.Logs = res.RowsAffected

		res = tx.Where("sku IN ?", skus).Delete(&models.SkuInfo{})
		if res.Error != nil {
			return res.Error
		}
		result.Catalog = res.RowsAffected

		return nil
	})

	return result, err
}
