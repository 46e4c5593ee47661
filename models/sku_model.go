package models

// SkuInfo is the product catalog. Inventory and log rows reference the sku
// code without a foreign key; a movement against an uncatalogued sku is
// tolerated.
type SkuInfo struct {
	Sku     string `json:"sku" gorm:"primaryKey;size:64"`
	Name    string `json:"name" gorm:"not null"`
	Barcode string `json:"barcode"`
}

func (SkuInfo) TableName() string {
	return "sku_info"
}
