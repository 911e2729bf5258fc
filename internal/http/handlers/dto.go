package handlers

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/modules/study/backlog"
)

const dateLayout = "2006-01-02"

type StudyLogDTO struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Subject      string    `json:"subject"`
	HoursStudied float64   `json:"hours_studied"`
	TopicCovered *string   `json:"topic_covered"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func toStudyLogDTO(l *types.StudyLog) StudyLogDTO {
	return StudyLogDTO{
		ID:           l.ID,
		Date:         l.Day().Format(dateLayout),
		Subject:      l.Subject,
		HoursStudied: l.HoursStudied,
		TopicCovered: l.TopicCovered,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
	}
}

func toStudyLogDTOs(rows []*types.StudyLog) []StudyLogDTO {
	out := make([]StudyLogDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toStudyLogDTO(r))
	}
	return out
}

type BacklogItemDTO struct {
	ID          uuid.UUID      `json:"id"`
	Subject     string         `json:"subject"`
	Topic       string         `json:"topic"`
	Status      types.Status   `json:"status"`
	Priority    types.Priority `json:"priority"`
	TargetDate  *string        `json:"target_date"`
	Transitions []types.Status `json:"transitions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toBacklogItemDTO(it *types.BacklogItem) BacklogItemDTO {
	dto := BacklogItemDTO{
		ID:          it.ID,
		Subject:     it.Subject,
		Topic:       it.Topic,
		Status:      it.Status,
		Priority:    it.Priority,
		Transitions: backlog.Transitions(it.Status),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
	if t := it.Target(); t != nil {
		s := t.Format(dateLayout)
		dto.TargetDate = &s
	}
	return dto
}

func toBacklogItemDTOs(rows []*types.BacklogItem) []BacklogItemDTO {
	out := make([]BacklogItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBacklogItemDTO(r))
	}
	return out
}
