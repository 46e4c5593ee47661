package models

// Warehouse status values.
const (
	WarehouseOpen   = "Open"
	WarehouseClosed = "Closed"
)

// Warehouse is a hub location. The code is referenced by inventory, log and
// shipment rows, so it never changes once written.
type Warehouse struct {
	Code    string `json:"code" gorm:"primaryKey;size:16"`
	Name    string `json:"name" gorm:"not null"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
	Region  string `json:"region"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}
