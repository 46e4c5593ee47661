package models

import (
	"time"

	"inventory-app/types"
)

// Message is hub-to-admin mail. Replies reference the original row through
// ReplyTo instead of being pattern-matched out of free text.
type Message struct {
	ID        types.SnowflakeID  `json:"id" gorm:"primaryKey"`
	Sender    string             `json:"sender"`
	Hub       string             `json:"hub"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	ReplyTo   *types.SnowflakeID `json:"reply_to" gorm:"default:null"`
	CreatedAt time.Time          `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
