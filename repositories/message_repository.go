package repositories

import (
	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db}
}

// CreateMessage stores a hub-to-admin message.
func (r *MessageRepository) CreateMessage(sender, hub, subject, body string) (*models.Message, error) {
	msg := models.Message{
		ID:      types.SnowflakeID(idgen.GenerateID()),
		Sender:  sender,
		Hub:     hub,
		Subject: subject,
		Body:    body,
	}
	if err := r.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateReply stores an admin reply linked to the original message. Hub and
// subject are derived from the original row, not matched out of free text.
func (r *MessageRepository) CreateReply(sender string, originalID types.SnowflakeID, body string) (*models.Message, error) {
	var original models.Message
	if err := r.db.Where("id = ?", originalID).First(&original).Error; err != nil {
		return nil, err
	}

	reply := models.Message{
		ID:      types.SnowflakeID(idgen.GenerateID()),
		Sender:  sender,
		Hub:     original.Hub,
		Subject: "RE: " + original.Subject,
		Body:    body,
		ReplyTo: &original.ID,
	}
	if err := r.db.Create(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

type InboxItem struct {
	models.Message
	ReplyCount int64 `json:"reply_count"`
}

// GetInbox lists root messages newest first with their reply counts. Admin
// view.
func (r *MessageRepository) GetInbox() ([]InboxItem, error) {
	var messages []models.Message
	err := r.db.Where("reply_to IS NULL").
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	inbox := make([]InboxItem, 0, len(messages))
	for _, msg := range messages {
		var count int64
		if err := r.db.Model(&models.Message{}).
			Where("reply_to = ?", msg.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		inbox = append(inbox, InboxItem{Message: msg, ReplyCount: count})
	}
	return inbox, nil
}

// GetForHubs lists messages and replies for a hub list, newest first.
func (r *MessageRepository) GetForHubs(hubs []string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("hub IN ?", hubs).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetReplies lists the replies to one message, oldest first.
func (r *MessageRepository) GetReplies(id types.SnowflakeID) ([]models.Message, error) {
	var replies []models.Message
	err := r.db.Where("reply_to = ?", id).
		Order("created_at asc").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

// CountUnanswered counts root messages that have no reply yet. Drives the
// admin inbox badge.
func (r *MessageRepository) CountUnanswered() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("reply_to IS NULL").
		Where("id NOT IN (?)", r.db.Model(&models.Message{}).
			Select("reply_to").Where("reply_to IS NOT NULL")).
		Count(&count).Error
	return count, err
}
