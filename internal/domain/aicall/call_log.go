package aicall

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	KindSmartRoutine = "smart_routine"

	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// CallLog records one outbound generation attempt.
type CallLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string         `gorm:"column:kind;not null;index" json:"kind"`
	Model     string         `gorm:"column:model" json:"model"`
	Status    string         `gorm:"column:status;not null" json:"status"`
	LatencyMS int64          `gorm:"column:latency_ms;not null" json:"latency_ms"`
	Error     string         `gorm:"column:error;type:text" json:"error,omitempty"`
	Response  datatypes.JSON `gorm:"column:response" json:"response,omitempty"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (CallLog) TableName() string { return "ai_call_log" }

func (c *CallLog) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
