package study

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudyLog is one submitted block of study time. Rows are never updated.
type StudyLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_daily_logs_user_date,priority:1" json:"user_id"`
	Date         datatypes.Date `gorm:"column:date;not null;index:idx_daily_logs_user_date,priority:2" json:"date"`
	Subject      string         `gorm:"column:subject;not null" json:"subject"`
	HoursStudied float64        `gorm:"column:hours_studied;type:numeric;not null" json:"hours_studied"`
	TopicCovered *string        `gorm:"column:topic_covered;type:text" json:"topic_covered,omitempty"`
	Notes        *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (StudyLog) TableName() string { return "daily_logs" }

func (l *StudyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Day is the log's calendar date as UTC midnight.
func (l StudyLog) Day() time.Time {
	y, m, d := time.Time(l.Date).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
