package models

import "time"

// Shipment is one supplier-declared line (sku, qty) of an incoming delivery.
// A multi-sku upload produces one row per line sharing the tracking number.
type Shipment struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Supplier  string    `json:"supplier"`
	Tracking  string    `json:"tracking"`
	Carrier   string    `json:"carrier"`
	ShipDate  string    `json:"ship_date"`
	Hub       string    `json:"hub"`
	Sku       string    `json:"sku"`
	Qty       int       `json:"qty"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (Shipment) TableName() string {
	return "shipments"
}
