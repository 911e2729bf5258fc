package domain

import (
	"github.com/yungbote/studytrack-backend/internal/domain/aicall"
	"github.com/yungbote/studytrack-backend/internal/domain/study"
)

type StudyLog = study.StudyLog
type BacklogItem = study.BacklogItem
type Priority = study.Priority
type Status = study.Status

type AICallLog = aicall.CallLog

const (
	PriorityLow    = study.PriorityLow
	PriorityMedium = study.PriorityMedium
	PriorityHigh   = study.PriorityHigh

	StatusPending    = study.StatusPending
	StatusInProgress = study.StatusInProgress
	StatusCompleted  = study.StatusCompleted
)

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{
		&study.StudyLog{},
		&study.BacklogItem{},
		&aicall.CallLog{},
	}
}
