package study

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BacklogItem is a topic the user still owes attention. Only Status changes after insert.
type BacklogItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject    string          `gorm:"column:subject;not null" json:"subject"`
	Topic      string          `gorm:"column:topic;not null" json:"topic"`
	Status     Status          `gorm:"column:status;type:text;not null;index" json:"status"`
	Priority   Priority        `gorm:"column:priority;type:text;not null" json:"priority"`
	TargetDate *datatypes.Date `gorm:"column:target_date" json:"target_date,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (BacklogItem) TableName() string { return "backlog_tracker" }

func (b *BacklogItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Target returns the target date as UTC midnight, or nil.
func (b BacklogItem) Target() *time.Time {
	if b.TargetDate == nil {
		return nil
	}
	y, m, d := time.Time(*b.TargetDate).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
