package repositories

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db}
}

type ActivityBucket struct {
	Day    string `json:"day"`
	Action string `json:"action"`
	Qty    int    `json:"qty"`
	Count  int    `json:"count"`
}

// GetLogs returns log rows newest first, optionally for a single hub.
func (r *LogRepository) GetLogs(hub string) ([]models.ActionLog, error) {
	var logs []models.ActionLog
	query := r.db.Order("timestamp desc, id desc")
	if hub != "" {
		query = query.Where("hub = ?", hub)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// GetLogsForHubs returns log rows newest first restricted to a hub list.
func (r *LogRepository) GetLogsForHubs(hubs []string) ([]models.ActionLog, error) {
	var logs []models.ActionLog
	err := r.db.Where("hub IN ?", hubs).
		Order("timestamp desc, id desc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetActivity aggregates movement quantities per day and action tag. Feeds
// the dashboard chart.
func (r *LogRepository) GetActivity(hub string) ([]ActivityBucket, error) {
	sqlActivity := `select date(timestamp) as day, action,
	sum(qty) as qty, count(*) as count
	from logs
	where 1=1`

	var params []interface{}
	if hub != "" {
		sqlActivity += " and hub = ?"
		params = append(params, hub)
	}
	sqlActivity += " group by date(timestamp), action order by day"

	var buckets []ActivityBucket
	if err := r.db.Raw(sqlActivity, params...).Scan(&buckets).Error; err != nil {
		return nil, err
	}

	return buckets, nil
}
