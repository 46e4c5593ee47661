package models

import (
	"time"
)

// User roles. The role decides which route group a token can reach.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleSupplier = "supplier"
	RoleRetail   = "retail"
)

// HubsAll is the sentinel stored in users.hubs for accounts that may touch
// every hub. It is a literal string, not an enumerated list.
const HubsAll = "ALL"

type User struct {
	Username string `json:"username" gorm:"primaryKey;size:64"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"not null"`
	Hubs     string `json:"hubs"`
}

func (User) TableName() string {
	return "users"
}

type UserSession struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex;size:64"`
	Username       string    `json:"username"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginLog struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	SessionID     string     `json:"session_id"`
	Username      string     `json:"username"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
	CreatedAt     time.Time  `json:"created_at"`
}
