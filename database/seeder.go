package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"inventory-app/models"
	"inventory-app/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedWarehouses inserts the four fixed hub records. Reruns are no-ops.
func SeedWarehouses(db *gorm.DB) {
	warehouses := []models.Warehouse{
		{Code: "HUB1", Name: "Hub 1 - Stafford, VA", Address: "2142 Richmond Hwy Ste 103, Stafford, VA 22554", Contact: "Kevin Mornot (+1)5404973359", Status: models.WarehouseOpen, Region: "United States"},
		{Code: "HUB2", Name: "Hub 2 - Hartford, CT", Address: "12 Charter Oak Pl, Hartford, CT 06106", Contact: "Customer Service (+1)5714122402", Status: models.WarehouseOpen, Region: "United States"},
		{Code: "HUB3", Name: "Hub 3 - Cali", Address: "3600 Sisk Rd Bldg 5 Ste 9, Modesto, CA 95356", Contact: "Customer Service (+1)5714122402", Status: models.WarehouseOpen, Region: "United States"},
		{Code: "RETAIL", Name: "Retail - Woodbridge, VA", Address: "3062 Ps Business Center Dr, Woodbridge, VA 22192", Contact: "Customer Service (+1)5714122402", Status: models.WarehouseOpen, Region: "United States"},
	}

	for _, w := range warehouses {
		var existing models.Warehouse
		if err := db.Where("code = ?", w.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&w).Error; err != nil {
					log.Println("Failed to insert warehouse:", w.Code, err)
				}
			}
		}
	}
}

// SeedAdminUser creates the bootstrap administrator, overwriting the
// credentials if the account already exists.
func SeedAdminUser(db *gorm.DB) {
	admin := models.User{
		Username: "kevin",
		Password: utils.HashPassword("admin123"),
		Role:     models.RoleAdmin,
		Hubs:     models.HubsAll,
	}

	var existing models.User
	err := db.Where("username = ?", admin.Username).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&admin).Error; err != nil {
			log.Println("Failed to insert admin user:", err)
		}
		return
	}
	if err == nil {
		db.Model(&existing).Updates(map[string]interface{}{
			"password": admin.Password,
			"role":     admin.Role,
			"hubs":     admin.Hubs,
		})
	}
}

// SeedSkusFromCSV loads the product catalog from a CSV with columns
// SKU, Product Name and Barcode Number (Barcode in the older export).
// Blank sku/name rows are skipped; existing skus are left untouched so
// rerunning the seed is idempotent. Returns the number of inserted rows.
func SeedSkusFromCSV(db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog header: %w", err)
	}

	skuCol, nameCol, barcodeCol := catalogColumns(header)
	if skuCol < 0 || nameCol < 0 {
		return 0, fmt.Errorf("catalog file is missing SKU or Product Name column")
	}

	inserted := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, fmt.Errorf("failed to read catalog row: %w", err)
		}

		sku := strings.TrimSpace(cell(row, skuCol))
		name := strings.TrimSpace(cell(row, nameCol))
		barcode := strings.TrimSpace(cell(row, barcodeCol))
		if sku == "" || name == "" {
			continue
		}

		result := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SkuInfo{Sku: sku, Name: name, Barcode: barcode})
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += int(result.RowsAffected)
	}

	return inserted, nil
}

func catalogColumns(header []string) (skuCol, nameCol, barcodeCol int) {
	skuCol, nameCol, barcodeCol = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "sku":
			skuCol = i
		case "product name":
			nameCol = i
		case "barcode number", "barcode":
			barcodeCol = i
		}
	}
	return
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
