package models

import "time"

// Movement action tags.
const (
	ActionIn          = "IN"
	ActionOut         = "OUT"
	ActionCount       = "COUNT"
	ActionAdminAdd    = "ADMIN-ADD"
	ActionAdminRemove = "ADMIN-REMOVE"
	ActionSupplierIn  = "SUPPLIER-IN"
)

// ActionLog is the append-only movement history. Rows are never updated or
// deleted, except by the maintenance purge.
type ActionLog struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username"`
	Sku       string    `json:"sku"`
	Hub       string    `json:"hub"`
	Action    string    `json:"action"`
	Qty       int       `json:"qty"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (ActionLog) TableName() string {
	return "logs"
}

// IsInbound reports whether an action tag increases the balance.
func IsInbound(action string) bool {
	switch action {
	case ActionIn, ActionCount, ActionAdminAdd, ActionSupplierIn:
		return true
	}
	return false
}
