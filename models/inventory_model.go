package models

// Inventory holds one balance row per (sku, hub). The quantity is the running
// sum of all log deltas for that pair and may go negative.
type Inventory struct {
	Sku      string `json:"sku" gorm:"primaryKey;size:64"`
	Hub      string `json:"hub" gorm:"primaryKey;size:16"`
	Quantity int    `json:"quantity"`
}

func (Inventory) TableName() string {
	return "inventory"
}
